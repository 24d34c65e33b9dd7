/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/swhkit/swhedit/pkg/backup"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage archived savegames",
	Long: `Every savegame overwritten by edit or fixsum is archived first. These
commands list and restore the archived copies.`,
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived savegames, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := openBackupDir(cmd)
		if err != nil {
			return err
		}
		defer archive.Close()
		return runBackupList(cmd.OutOrStdout(), archive)
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore ID",
	Short: "Restore an archived savegame",
	Long: `Write an archived savegame back to where it came from, or to --to.

Examples:
  swhedit backup restore 2a3UQbOzJwFS2gJ9xkO0dnEnA6L
  swhedit backup restore 2a3UQbOzJwFS2gJ9xkO0dnEnA6L --to /tmp/slot1.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")
		archive, err := openBackupDir(cmd)
		if err != nil {
			return err
		}
		defer archive.Close()
		return runBackupRestore(cmd.OutOrStdout(), archive, args[0], to)
	},
}

var backupDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an archived savegame",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := ksuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid backup id %q: %w", args[0], err)
		}
		archive, err := openBackupDir(cmd)
		if err != nil {
			return err
		}
		defer archive.Close()
		if err := archive.Delete(id); err != nil {
			return err
		}
		cmd.Printf("Deleted backup %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupListCmd, backupRestoreCmd, backupDeleteCmd)

	backupRestoreCmd.Flags().String("to", "", "Restore to this path instead of the original one")
}

// openBackupDir opens the archive even when automatic backups are disabled
func openBackupDir(cmd *cobra.Command) (*backup.Archive, error) {
	cfg := configFrom(cmd)
	if cfg.Backup.Dir == "" {
		return nil, errors.New("backup.dir is not configured")
	}
	return backup.Open(cfg.Backup.Dir)
}

func runBackupList(w io.Writer, archive *backup.Archive) error {
	entries, err := archive.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No backups")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tSIZE\tPATH")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.ID, e.Time.Format(time.DateTime), e.Size, e.Path)
	}
	return tw.Flush()
}

func runBackupRestore(w io.Writer, archive *backup.Archive, rawID, to string) error {
	id, err := ksuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid backup id %q: %w", rawID, err)
	}
	path, err := archive.Restore(id, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Restored %s to %s\n", id, path)
	return nil
}

/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/swhkit/swhedit/pkg/checksum"
)

// fixsumCmd represents the fixsum command
var fixsumCmd = &cobra.Command{
	Use:   "fixsum FILE",
	Short: "Repair the checksum of a hand-edited savegame",
	Long: `Recompute the CRC32 of a savegame and store it in the header. Nothing
else in the file is decoded or changed, so this also works on files the
editor cannot parse.

Without -o the file is fixed in place (after a backup, if enabled).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		archive, err := openArchive(configFrom(cmd))
		if err != nil {
			return err
		}
		var store backupStore
		if archive != nil {
			defer archive.Close()
			store = archive
		}

		return runFixsum(cmd.OutOrStdout(), args[0], output, store)
	},
}

func init() {
	rootCmd.AddCommand(fixsumCmd)

	fixsumCmd.Flags().StringP("output", "o", "", "Write the repaired file here instead of in place")
}

func runFixsum(w io.Writer, path, output string, store backupStore) error {
	fmt.Fprintf(w, "Operating on savefile %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read savegame: %w", err)
	}
	stored, err := checksum.Stored(data)
	if err != nil {
		return err
	}
	computed, _ := checksum.Compute(data)
	fmt.Fprintf(w, "Checksum in the file itself: 0x%08x\n", stored)

	if output == "" || output == path {
		if stored == computed {
			fmt.Fprintln(w, "Checksum is correct, exiting.")
			return nil
		}
		if err := backupBefore(w, store, path); err != nil {
			return err
		}
		result, err := checksum.FixFile(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Correct checksum: 0x%08x\n", result.Computed)
		fmt.Fprintln(w, "Wrote corrected checksum")
		return nil
	}

	fixed, err := checksum.Recompute(data)
	if err != nil {
		return err
	}
	if stored == computed {
		fmt.Fprintln(w, "Checksum is correct, copying unchanged.")
	} else {
		fmt.Fprintf(w, "Correct checksum: 0x%08x\n", computed)
	}
	if err := backupBefore(w, store, output); err != nil {
		return err
	}
	if err := atomic.WriteFile(output, bytes.NewReader(fixed)); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(w, "Wrote %s\n", output)
	return nil
}

/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/swhkit/swhedit/pkg/checksum"
	"github.com/swhkit/swhedit/pkg/savegame"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Check that a savegame decodes and re-encodes identically",
	Long: `Decode a savegame and encode it again, failing unless the result is a
byte-for-byte replica of the input (checksum aside).

A savegame that passes can be edited safely.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read savegame: %w", err)
	}

	sg, err := savegame.Decode(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %d bytes, re-encodes identically\n", path, len(data))
	fmt.Fprintf(w, "Decoded up to 0x%08X, %d bytes of trailing data kept as-is\n",
		sg.RemainingOffset, len(sg.Remaining))

	if ok, _ := checksum.Verify(data); ok {
		fmt.Fprintf(w, "Checksum: 0x%08x (correct)\n", sg.Checksum)
	} else {
		computed, _ := checksum.Compute(data)
		fmt.Fprintf(w, "Checksum: 0x%08x (wrong, should be 0x%08x)\n", sg.Checksum, computed)
	}
	return nil
}

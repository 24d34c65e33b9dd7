/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/swhkit/swhedit/pkg/listing"
	"github.com/swhkit/swhedit/pkg/savegame"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "Show information about a savegame",
	Long: `Show character XP, water, inventory and item assignments.

Repeat -v for more: -v adds every character, mission, level, hat and seen
item; -vv adds a hexdump of the data after the last decoded field; -vvv dumps
the whole decoded model.

Examples:
  swhedit list slot1.dat
  swhedit list -vv slot1.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		return runList(cmd.OutOrStdout(), args[0], verbosity)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().CountP("verbose", "v", "Show extra information (repeat for more)")
}

func runList(w io.Writer, path string, verbosity int) error {
	sg, err := savegame.Load(path)
	if err != nil {
		return err
	}
	return listing.Print(w, sg, verbosity)
}

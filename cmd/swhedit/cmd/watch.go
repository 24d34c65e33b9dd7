/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swhkit/swhedit/pkg/watch"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Check every savegame the game writes",
	Long: `Watch a save directory and check each savegame as soon as the game has
finished writing it. Useful to find out right away whether a game update
changed the format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settle, _ := cmd.Flags().GetDuration("settle")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := watch.New(args[0])
		w.Settle = settle
		out := cmd.OutOrStdout()
		return w.Run(ctx, func(e watch.Event) { printEvent(out, e) })
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("settle", watch.DefaultSettle, "How long a file must stay unchanged before it is read")
}

func printEvent(w io.Writer, e watch.Event) {
	if e.Err != nil {
		fmt.Fprintf(w, "%s: FAILED: %v\n", e.Path, e.Err)
		return
	}
	sg := e.Savegame
	fmt.Fprintf(w, "%s: ok (water %d, %d items, %d hats, %d bytes undecoded)\n",
		e.Path, sg.Water, sg.Items.Len(), sg.Hats.Len(), len(sg.Remaining))
}

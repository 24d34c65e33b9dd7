/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swhkit/swhedit/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve FILE",
	Short: "Serve a read-only JSON view of a savegame",
	Long: `Start an HTTP server that decodes FILE on every request, so the view
follows the game as it saves. Prometheus metrics are served at /metrics.

Examples:
  swhedit serve slot1.dat
  swhedit serve slot1.dat --port 9000 --api-key mysecretkey`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd)
		config := api.ServerConfig{
			Port: cfg.Server.Port,
			Bind: cfg.Server.Bind,
		}
		// Flags win over the config file only when given
		if cmd.Flags().Changed("port") {
			config.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			config.Bind, _ = cmd.Flags().GetString("bind")
		}
		config.APIKey, _ = cmd.Flags().GetString("api-key")

		if _, err := os.Stat(args[0]); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cmd.Printf("Serving %s on http://%s:%d/api/v1\n", args[0], config.Bind, config.Port)
		return api.Run(ctx, api.FileSource(args[0]), config, nil)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (default from server.port)")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to (default from server.bind)")
	serveCmd.Flags().String("api-key", "", "Require this key in X-API-Key on /api/v1 requests")
}

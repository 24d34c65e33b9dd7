/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/swhkit/swhedit/pkg/backup"
	"github.com/swhkit/swhedit/pkg/config"
)

type configKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swhedit",
	Short: "View and edit SteamWorld Heist savegames",
	Long: `swhedit reads SteamWorld Heist savegames, checks that they can be
reproduced byte for byte, and writes edited copies with a fresh checksum.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		logLevel, _ := cmd.Flags().GetString("log-level")

		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		level, err := config.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/swhedit/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

// loadConfig reads configPath, or the default location when it is empty.
// A missing default file is not an error.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadConfig(configPath)
	}
	configPath = config.GetDefaultConfigPath()
	if !config.ConfigExists(configPath) {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(configPath)
}

// configFrom returns the configuration loaded by the root command
func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

// openArchive opens the backup archive, or returns nil when backups are off
func openArchive(cfg *config.Config) (*backup.Archive, error) {
	if !cfg.Backup.Enabled {
		return nil, nil
	}
	archive, err := backup.Open(cfg.Backup.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open backups (set backup.enabled: false to skip): %w", err)
	}
	return archive, nil
}

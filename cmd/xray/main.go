// Package main is the entry point for the xray CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xray4scm/xray"
	"github.com/xray4scm/xray/internal/config"
	"github.com/xray4scm/xray/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xray",
		Short: "Mirror version-control history into a relational store",
		Long: `xray mirrors repository history into a relational store, recording
every revision, file change, and per-language line counts, so the data can
be queried with plain SQL.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables

Environment variables:
  XRAY_DATA_DIR     Data directory (default: ~/.xray)
  XRAY_DB_URL       Database URL (default: sqlite:///{data_dir}/xray.db)
  XRAY_LOG_LEVEL    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  XRAY_LOG_FORMAT   Log format: pretty, json (default: pretty)`,
	}

	cmd.PersistentFlags().String("env-file", "", "path to a .env file")

	cmd.AddCommand(reposCmd())
	cmd.AddCommand(branchCmd())
	cmd.AddCommand(syncCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// newClient builds the library client from the resolved configuration.
func newClient(cmd *cobra.Command) (*xray.Client, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.New(log.Format(cfg.LogFormat()), cfg.LogLevel())

	return xray.New(
		xray.WithDatabaseURL(cfg.DBURL()),
		xray.WithDataDir(cfg.DataDir()),
		xray.WithLogger(logger),
	)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"scribehq/sqlscribe/pkg/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sqlscribe",
	Short: "sqlscribe - database object script exporter",
	Long: `Sqlscribe exports captured database object definitions to SQL scripts.

It reads a server inventory and turns each object (jobs, logins, credentials,
linked servers, procedures, ...) into executable SQL, writing timestamped
.sql files or streaming the scripts to the console:
  - Auto-derived file names from server, object kind and run timestamp
  - Safe by default: pre-existing files are never overwritten
  - Append mode for collecting a whole server into one script
  - A queryable journal of past export runs

For more information, visit: https://scribehq.github.io/sqlscribe`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "sqlscribe.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogging installs the default slog logger from configuration. The
// --verbose flag lowers the level to debug. Logs go to stderr so passthru
// script output on stdout stays clean.
func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

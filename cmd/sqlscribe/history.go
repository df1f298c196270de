package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"scribehq/sqlscribe/pkg/cli"
	"scribehq/sqlscribe/pkg/config"
	"scribehq/sqlscribe/pkg/export/journal"
)

var historyFlags struct {
	runID  string
	server string
	status string
	since  string
	until  string
	limit  int
	offset int
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Query past export runs",
	Long: `Query the export journal for past runs.

Requires the journal to be enabled in configuration (or populated by earlier
runs with --journal).

Examples:
  # Most recent exports
  sqlscribe history

  # Failures for one server
  sqlscribe history --server SQL01 --status failed

  # Everything from one run, as JSON
  sqlscribe history --run-id 8a2f0c4e-... --format json

  # A time window
  sqlscribe history --since 2026-08-01T00:00:00Z --until 2026-08-29T00:00:00Z`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyFlags.runID, "run-id", "", "filter by run ID")
	historyCmd.Flags().StringVar(&historyFlags.server, "server", "", "filter by server name")
	historyCmd.Flags().StringVar(&historyFlags.status, "status", "", "filter by status: completed, skipped, failed")
	historyCmd.Flags().StringVar(&historyFlags.since, "since", "", "only entries started at or after this RFC3339 time")
	historyCmd.Flags().StringVar(&historyFlags.until, "until", "", "only entries started before this RFC3339 time")
	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 100, "max results")
	historyCmd.Flags().IntVar(&historyFlags.offset, "offset", 0, "pagination offset")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json, csv")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()
	setupLogging(cfg)

	return executeHistory(cfg, os.Stdout)
}

func executeHistory(cfg *config.Config, out io.Writer) error {
	format, err := cli.ParseOutputFormat(historyFlags.format)
	if err != nil {
		return err
	}

	query := &journal.Query{
		RunID:  historyFlags.runID,
		Server: historyFlags.server,
		Status: historyFlags.status,
		Limit:  historyFlags.limit,
		Offset: historyFlags.offset,
	}
	if historyFlags.since != "" {
		ts, err := time.Parse(time.RFC3339, historyFlags.since)
		if err != nil {
			return cli.NewConfigError("since", err.Error())
		}
		query.Since = &ts
	}
	if historyFlags.until != "" {
		ts, err := time.Parse(time.RFC3339, historyFlags.until)
		if err != nil {
			return cli.NewConfigError("until", err.Error())
		}
		query.Until = &ts
	}

	j, err := journal.NewSQLiteJournal(journalConfig(cfg))
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	defer j.Close()

	ctx, stop := cli.SignalContext()
	defer stop()

	entries, err := j.Query(ctx, query)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	if len(entries) == 0 && format == cli.FormatText {
		fmt.Fprintln(out, "no journal entries match")
		return nil
	}

	return cli.NewFormatter(format).FormatTo(out, entries)
}

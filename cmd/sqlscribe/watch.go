package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"scribehq/sqlscribe/pkg/cli"
	"scribehq/sqlscribe/pkg/config"
	"scribehq/sqlscribe/pkg/export"
	"scribehq/sqlscribe/pkg/export/journal"
	"scribehq/sqlscribe/pkg/export/schedule"
	"scribehq/sqlscribe/pkg/inventory"
	"scribehq/sqlscribe/pkg/telemetry/metrics"
)

var watchFlags struct {
	input     string
	cron      string
	outputDir string
	appendRun bool
	reload    bool
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run exports on a schedule",
	Long: `Run exports on a cron schedule until interrupted.

Each tick loads the inventory and exports every object, appending to the
run's files. With --reload, a change to the inventory file also triggers an
immediate export. When metrics are enabled in configuration, Prometheus
metrics are served at /metrics.

Examples:
  # Nightly export (schedule from config, default daily at 3 AM)
  sqlscribe watch --input servers.yaml

  # Every six hours, re-export when the inventory changes
  sqlscribe watch --input servers.yaml --cron "0 */6 * * *" --reload`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.input, "input", "i", "", "inventory file (defaults to schedule.inventory from config)")
	watchCmd.Flags().StringVar(&watchFlags.cron, "cron", "", "cron expression override")
	watchCmd.Flags().StringVar(&watchFlags.outputDir, "output-dir", "", "directory for auto-named files")
	watchCmd.Flags().BoolVar(&watchFlags.appendRun, "append", true, "append to files produced by earlier ticks")
	watchCmd.Flags().BoolVar(&watchFlags.reload, "reload", false, "export immediately when the inventory file changes")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()
	setupLogging(cfg)
	logger := slog.Default().With("component", "watch")

	input := watchFlags.input
	if input == "" {
		input = cfg.Schedule.Inventory
	}
	if input == "" {
		return cli.NewConfigError("input", "no inventory file given and schedule.inventory not configured")
	}

	spec := watchFlags.cron
	if spec == "" {
		spec = cfg.Schedule.Cron
	}

	outputDir := watchFlags.outputDir
	if outputDir == "" {
		outputDir = cfg.Export.OutputDir
	}

	var exportMetrics *metrics.ExportMetrics
	if cfg.Metrics.Enabled {
		exportMetrics = metrics.NewExportMetrics(cfg.Metrics.Namespace, nil)
	}

	var j journal.Journal
	if cfg.Journal.Enabled {
		sj, err := journal.NewSQLiteJournal(journalConfig(cfg))
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer sj.Close()
		j = sj
	}

	runner, err := newWatchRunner(cfg, outputDir, j, exportMetrics)
	if err != nil {
		return err
	}

	job := func(ctx context.Context) error {
		objects, err := inventory.Load(input)
		if err != nil {
			return err
		}
		report := runner.Run(ctx, objects)
		if failed := report.Failed(); failed > 0 {
			return fmt.Errorf("%d of %d objects failed", failed, len(report.Items))
		}
		return nil
	}

	ctx, stop := cli.SignalContext()
	defer stop()

	scheduler := schedule.NewScheduler(spec, job)
	if err := scheduler.Start(ctx); err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer scheduler.Stop()

	if next := scheduler.NextRun(); next != nil {
		logger.Info("watch mode started", "inventory", input, "schedule", spec, "next_run", next)
	}

	if reloadEnabled(cmd.Flags().Changed("reload"), watchFlags.reload, cfg.Schedule.Watch) {
		watcher, err := schedule.NewFileWatcher(input, nil)
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		go func() {
			if err := watcher.Watch(ctx, func() error {
				return job(ctx)
			}); err != nil {
				logger.Error("inventory watcher exited", "error", err)
			}
		}()
	}

	if cfg.Metrics.Enabled {
		go serveMetrics(ctx, cfg.Metrics.ListenAddress, exportMetrics, logger)
	}

	<-ctx.Done()
	logger.Info("watch mode stopping")
	return nil
}

// newWatchRunner builds the per-tick runner from configuration, resolving the
// same encoding and scripting-options defaults the export command uses.
func newWatchRunner(cfg *config.Config, outputDir string, j journal.Journal, m *metrics.ExportMetrics) (*export.Runner, error) {
	enc, err := export.ParseEncoding(cfg.Export.Encoding)
	if err != nil {
		return nil, cli.NewConfigError("encoding", err.Error())
	}

	opts, err := resolveOptions("", cfg)
	if err != nil {
		return nil, err
	}

	return &export.Runner{
		Options:     opts,
		OutputDir:   outputDir,
		Encoding:    enc,
		Append:      watchFlags.appendRun,
		CommandName: "sqlscribe watch",
		Journal:     j,
		Metrics:     m,
	}, nil
}

// reloadEnabled resolves inventory-reload behavior: an explicit --reload flag
// wins, otherwise the schedule.watch config value applies.
func reloadEnabled(flagChanged, flagValue, cfgValue bool) bool {
	if flagChanged {
		return flagValue
	}
	return cfgValue
}

// serveMetrics exposes the Prometheus endpoint until the context ends.
func serveMetrics(ctx context.Context, addr string, m *metrics.ExportMetrics, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", "address", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics endpoint failed", "error", err)
	}
}

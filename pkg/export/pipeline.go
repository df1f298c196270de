package export

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"scribehq/sqlscribe/pkg/export/journal"
	"scribehq/sqlscribe/pkg/scripting"
	"scribehq/sqlscribe/pkg/telemetry/metrics"
)

// Runner executes the export pipeline over a batch of objects. Processing is
// strictly sequential: one item is fully resolved, planned and written before
// the next begins, so concurrent writes to the same file cannot happen.
type Runner struct {
	// Options is the scripting-options value passed through to each
	// object's scripting capability. Nil selects the defaults.
	Options *scripting.Options

	// Path is an explicit output file path. When empty, paths are derived
	// per item from the resolved server name, object kind and the shared
	// run timestamp.
	Path string

	// OutputDir prefixes auto-derived paths. It does not affect an
	// explicit Path. Empty means the current working directory.
	OutputDir string

	// Encoding is the text encoding for file writes. Empty selects UTF8.
	Encoding Encoding

	// Append suppresses the pre-existing-file conflict check and appends
	// to existing files instead of skipping.
	Append bool

	// Passthru routes output to the report's script blocks instead of
	// files. All path and existence logic is skipped.
	Passthru bool

	// Silent suppresses informational progress logging. Errors are always
	// logged.
	Silent bool

	// CommandName is recorded in run context and script headers.
	// Defaults to "sqlscribe export".
	CommandName string

	// Confirm, when set, is invoked before each item's side-effecting
	// write. Returning false skips the item with no write and no error.
	Confirm func(obj scripting.Scriptable, target *Target) bool

	// OnItem, when set, is invoked after each item reaches its terminal
	// status. The CLI uses it to drive progress reporting.
	OnItem func(item *ItemResult)

	// Journal, when set, receives one entry per processed item. Journal
	// failures are logged and never fail the export.
	Journal journal.Journal

	// Metrics, when set, receives per-item counters and timings.
	Metrics *metrics.ExportMetrics

	// Logger is the structured logger. Nil selects slog.Default.
	Logger *slog.Logger

	// Context pins the run context, mainly for tests. Nil captures a
	// fresh one (current user, current time, new run ID) at Run start.
	Context *RunContext
}

// Run processes the batch and returns its report. Every failure is
// item-scoped: resolution errors, conflicts, scripting and write errors are
// recorded on the item result and the batch continues. Run stops early only
// when ctx is cancelled; items not reached are absent from the report.
func (r *Runner) Run(ctx context.Context, objects []scripting.Scriptable) *Report {
	rc := r.runContext()
	logger := r.logger()

	opts := r.Options
	if opts == nil {
		opts = scripting.DefaultOptions()
	}
	enc := r.Encoding
	if enc == "" {
		enc = EncodingUTF8
	}

	report := &Report{RunID: rc.RunID, StartedAt: time.Now()}
	if r.Metrics != nil {
		r.Metrics.RecordBatch(len(objects))
	}
	if !r.Silent {
		logger.Info("starting export batch",
			"run_id", rc.RunID, "objects", len(objects), "passthru", r.Passthru)
	}

	// Targets that already received their header block this run. A second
	// object resolving to the same auto-derived path appends its body after
	// the first, with no second header.
	headered := make(map[string]bool)

	for _, obj := range objects {
		if ctx.Err() != nil {
			break
		}
		item := r.processItem(rc, obj, opts, enc, headered, logger)
		report.Items = append(report.Items, item)
		r.record(ctx, rc, item, logger)
		if r.OnItem != nil {
			r.OnItem(item)
		}
	}

	report.FinishedAt = time.Now()
	if !r.Silent {
		logger.Info("export batch finished",
			"run_id", rc.RunID,
			"completed", report.Completed(),
			"skipped", report.Skipped(),
			"failed", report.Failed(),
		)
	}
	return report
}

// processItem runs one object through resolution, planning and writing.
func (r *Runner) processItem(
	rc RunContext,
	obj scripting.Scriptable,
	opts *scripting.Options,
	enc Encoding,
	headered map[string]bool,
	logger *slog.Logger,
) *ItemResult {
	item := &ItemResult{
		ObjectName: obj.Name(),
		ObjectKind: string(obj.Kind()),
		StartedAt:  time.Now(),
	}
	defer func() { item.FinishedAt = time.Now() }()

	server, err := scripting.ResolveServer(obj)
	if err != nil {
		item.fail(err)
		logger.Error("cannot determine server for object, skipping",
			"object", obj.Name(), "kind", obj.Kind(), "error", err)
		return item
	}
	item.Server = server.Name

	target := PlanTarget(r.Path, server.Name, string(obj.Kind()), rc, r.Passthru)
	if target.Type == TargetFile && r.Path == "" && r.OutputDir != "" {
		target.Path = filepath.Join(r.OutputDir, target.Path)
	}
	item.Target = target.String()

	if target.Type == TargetFile {
		// Appending is implicit once this run has touched the path.
		appendMode := r.Append || headered[target.Path]
		target.Append = appendMode
		if err := target.CheckConflict(appendMode); err != nil {
			item.skip(err)
			logger.Warn("target file exists and append not requested, skipping",
				"object", obj.Name(), "path", target.Path)
			return item
		}
	}

	if r.Confirm != nil && !r.Confirm(obj, target) {
		item.skip(nil)
		if !r.Silent {
			logger.Info("export declined by caller", "object", obj.Name())
		}
		return item
	}

	script, err := obj.Script(opts)
	if err != nil {
		item.fail(scripting.NewScriptError(obj.Name(), obj.Kind(), err))
		logger.Error("scripting failed",
			"object", obj.Name(), "kind", obj.Kind(), "error", err)
		return item
	}

	if !r.Silent {
		logger.Info("exporting object",
			"object", obj.Name(), "kind", obj.Kind(),
			"server", server.Name, "target", item.Target)
	}

	if target.Type == TargetConsole {
		key := "console\x00" + server.Name
		if !headered[key] {
			item.Script = HeaderBlock(rc, server.Name) + script
			headered[key] = true
		} else {
			item.Script = script
		}
		item.Status = StatusCompleted
	} else {
		withHeader := !headered[target.Path]
		n, err := writeScripts(target, enc, HeaderBlock(rc, server.Name), script, withHeader)
		item.Bytes = n
		if err != nil {
			item.fail(err)
			logger.Error("failed to write script",
				"object", obj.Name(), "path", target.Path, "error", err)
			return item
		}
		headered[target.Path] = true
		item.Status = StatusCompleted
	}

	if !r.Silent {
		logger.Info("export complete",
			"object", obj.Name(), "target", item.Target, "bytes", item.Bytes)
	}
	return item
}

// record forwards the item outcome to metrics and the journal, best effort.
func (r *Runner) record(ctx context.Context, rc RunContext, item *ItemResult, logger *slog.Logger) {
	if r.Metrics != nil {
		r.Metrics.RecordItem(item.ObjectKind, string(item.Status),
			item.FinishedAt.Sub(item.StartedAt), item.Bytes)
	}
	if r.Journal == nil {
		return
	}

	entry := &journal.Entry{
		ID:           uuid.NewString(),
		RunID:        rc.RunID,
		Server:       item.Server,
		ObjectName:   item.ObjectName,
		ObjectKind:   item.ObjectKind,
		Target:       item.Target,
		Status:       string(item.Status),
		Error:        item.Error,
		BytesWritten: item.Bytes,
		StartedTime:  item.StartedAt,
		FinishedTime: item.FinishedAt,
	}
	if err := r.Journal.Record(ctx, entry); err != nil {
		logger.Warn("failed to record journal entry",
			"object", item.ObjectName, "error", err)
	}
}

func (r *Runner) runContext() RunContext {
	if r.Context != nil {
		return *r.Context
	}
	name := r.CommandName
	if name == "" {
		name = "sqlscribe export"
	}
	return NewRunContext(name)
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default().With("component", "export.pipeline")
}

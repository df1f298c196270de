// Package export implements the object-to-script export pipeline.
//
// The pipeline processes a batch of scriptable objects sequentially, one item
// fully handled before the next. Each item passes through four stages:
//
//  1. Root resolution - walk the object's owning hierarchy to its server
//     (scripting.ResolveServer).
//  2. Target planning - choose a named file, an auto-derived file path, or
//     console passthrough, and check for pre-existing-file conflicts.
//  3. Writing - emit a header comment block (once per output target per run)
//     followed by the object's script text, in the configured text encoding.
//  4. Failure reporting - resolution and conflict failures are recorded on
//     the item result and the batch continues.
//
// All failures are item-scoped: a broken object produces one diagnostic and
// zero output while the rest of the batch exports normally. Nothing is
// retried.
//
// # Basic Usage
//
//	runner := &export.Runner{
//	    Options:  scripting.DefaultOptions(),
//	    Encoding: export.EncodingUTF8,
//	}
//	report := runner.Run(ctx, objects)
//	for _, item := range report.Items {
//	    if item.Status == export.StatusFailed {
//	        log.Printf("%s: %v", item.ObjectName, item.Err)
//	    }
//	}
//
// # Run Context
//
// The acting user, command name, run ID and batch timestamp are captured once
// at the start of a run (RunContext) and threaded through every stage. All
// auto-derived filenames in one run share the same timestamp, so two objects
// that resolve to the same server land in the same file: one header followed
// by both script bodies in input order.
package export

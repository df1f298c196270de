/*
Package cli provides command-line interface utilities for sqlscribe.

The cli package includes output formatters, progress reporters, and common CLI
helpers used by the sqlscribe command.

Output Formatting:

The cli package renders export reports and journal entries as text tables,
JSON, or CSV:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Progress Reporting:

For large batches, use the progress reporter:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(int64(len(objects)))
	for i, obj := range objects {
		// Export obj
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SignalContext()
	defer stop()
*/
package cli

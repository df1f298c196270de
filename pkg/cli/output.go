package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"scribehq/sqlscribe/pkg/export"
	"scribehq/sqlscribe/pkg/export/journal"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is a human-readable table (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
	// FormatCSV is CSV output.
	FormatCSV OutputFormat = "csv"
)

// ParseOutputFormat validates a format flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON, FormatCSV:
		return OutputFormat(s), nil
	case "":
		return FormatText, nil
	default:
		return "", NewConfigError("format", fmt.Sprintf("unknown output format %q", s))
	}
}

// Formatter renders command output.
type Formatter interface {
	FormatTo(w io.Writer, data interface{}) error
}

// NewFormatter creates a formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatCSV:
		return &CSVFormatter{}
	default:
		return &TextFormatter{}
	}
}

// TextFormatter renders reports and journal entries as aligned tables.
type TextFormatter struct{}

// FormatTo writes data to w in text format.
func (f *TextFormatter) FormatTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case *export.Report:
		return f.writeReport(w, v)
	case []*journal.Entry:
		return f.writeEntries(w, v)
	default:
		_, err := fmt.Fprintf(w, "%v\n", v)
		return err
	}
}

func (f *TextFormatter) writeReport(w io.Writer, report *export.Report) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "OBJECT\tKIND\tSERVER\tTARGET\tSTATUS\tBYTES\tERROR")
	for _, item := range report.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			item.ObjectName, item.ObjectKind, item.Server,
			item.Target, item.Status, item.Bytes, item.Error)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nrun %s: %d completed, %d skipped, %d failed (%s)\n",
		report.RunID, report.Completed(), report.Skipped(), report.Failed(),
		report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
	return err
}

func (f *TextFormatter) writeEntries(w io.Writer, entries []*journal.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSERVER\tOBJECT\tKIND\tSTATUS\tTARGET\tSTARTED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(e.RunID), e.Server, e.ObjectName, e.ObjectKind,
			e.Status, e.Target, e.StartedTime.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}

// shortID abbreviates a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// JSONFormatter renders output as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatTo writes data to w in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// CSVFormatter renders reports and journal entries as CSV.
type CSVFormatter struct{}

// FormatTo writes data to w in CSV format.
func (f *CSVFormatter) FormatTo(w io.Writer, data interface{}) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	switch v := data.(type) {
	case *export.Report:
		if err := cw.Write([]string{"run_id", "object", "kind", "server", "target", "status", "bytes", "error"}); err != nil {
			return err
		}
		for _, item := range v.Items {
			if err := cw.Write([]string{
				v.RunID, item.ObjectName, item.ObjectKind, item.Server,
				item.Target, string(item.Status),
				strconv.FormatInt(item.Bytes, 10), item.Error,
			}); err != nil {
				return err
			}
		}
	case []*journal.Entry:
		if err := cw.Write([]string{"run_id", "server", "object", "kind", "target", "status", "bytes", "started", "finished", "error"}); err != nil {
			return err
		}
		for _, e := range v {
			if err := cw.Write([]string{
				e.RunID, e.Server, e.ObjectName, e.ObjectKind, e.Target, e.Status,
				strconv.FormatInt(e.BytesWritten, 10),
				e.StartedTime.Format(time.RFC3339),
				e.FinishedTime.Format(time.RFC3339),
				e.Error,
			}); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("csv output not supported for %T", data)
	}

	cw.Flush()
	return cw.Error()
}

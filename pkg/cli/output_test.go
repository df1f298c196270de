package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"scribehq/sqlscribe/pkg/export"
	"scribehq/sqlscribe/pkg/export/journal"
)

func sampleReport() *export.Report {
	started := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	return &export.Report{
		RunID:      "8a2f0c4e-1111-2222-3333-444455556666",
		StartedAt:  started,
		FinishedAt: started.Add(120 * time.Millisecond),
		Items: []*export.ItemResult{
			{
				ObjectName: "nightly-backup",
				ObjectKind: "Job",
				Server:     "SQL01",
				Target:     "SQL01-Job-20260314092653.sql",
				Status:     export.StatusCompleted,
				Bytes:      412,
			},
			{
				ObjectName: "orphan",
				ObjectKind: "Login",
				Status:     export.StatusFailed,
				Error:      "cannot determine server",
			},
		},
	}
}

func sampleEntries() []*journal.Entry {
	return []*journal.Entry{
		{
			RunID:       "8a2f0c4e-1111-2222-3333-444455556666",
			Server:      "SQL01",
			ObjectName:  "nightly-backup",
			ObjectKind:  "Job",
			Target:      "SQL01-Job-20260314092653.sql",
			Status:      "completed",
			StartedTime: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		},
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"", FormatText, false},
		{"junit", "", true},
	}

	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   string
	}{
		{FormatText, "*cli.TextFormatter"},
		{FormatJSON, "*cli.JSONFormatter"},
		{FormatCSV, "*cli.CSVFormatter"},
		{"unknown", "*cli.TextFormatter"},
	}

	for _, tt := range tests {
		if got := fmt.Sprintf("%T", NewFormatter(tt.format)); got != tt.want {
			t.Errorf("NewFormatter(%q) type = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestTextFormatter_Report(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&TextFormatter{}).FormatTo(buf, sampleReport()); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"OBJECT", "nightly-backup", "SQL01-Job-20260314092653.sql",
		"cannot determine server",
		"1 completed, 0 skipped, 1 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}

func TestTextFormatter_Entries(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&TextFormatter{}).FormatTo(buf, sampleEntries()); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "8a2f0c4e") {
		t.Errorf("entries output missing abbreviated run id:\n%s", out)
	}
	if strings.Contains(out, "8a2f0c4e-1111") {
		t.Errorf("run id not abbreviated:\n%s", out)
	}
	if !strings.Contains(out, "2026-03-14 09:26:53") {
		t.Errorf("entries output missing timestamp:\n%s", out)
	}
}

func TestTextFormatter_Fallback(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&TextFormatter{}).FormatTo(buf, "plain message"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != "plain message\n" {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), "plain message\n")
	}
}

func TestJSONFormatter_Report(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&JSONFormatter{Indent: true}).FormatTo(buf, sampleReport()); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("FormatTo() produced invalid JSON: %v", err)
	}
	if decoded["run_id"] != "8a2f0c4e-1111-2222-3333-444455556666" {
		t.Errorf("run_id = %v", decoded["run_id"])
	}
}

func TestCSVFormatter_Entries(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&CSVFormatter{}).FormatTo(buf, sampleEntries()); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	records, err := csv.NewReader(buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("CSV rows = %d, want header + 1", len(records))
	}
	if records[0][0] != "run_id" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][2] != "nightly-backup" {
		t.Errorf("row = %v", records[1])
	}
}

func TestCSVFormatter_UnsupportedType(t *testing.T) {
	if err := (&CSVFormatter{}).FormatTo(&bytes.Buffer{}, 42); err == nil {
		t.Error("FormatTo() expected error for unsupported type")
	}
}

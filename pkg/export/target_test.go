package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testRunContext() RunContext {
	return RunContext{
		ActingUser:  "tester",
		CommandName: "sqlscribe export",
		Timestamp:   time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		RunID:       "run-1",
	}
}

func TestPlanTarget_Passthru(t *testing.T) {
	// Passthru wins even when an explicit path is supplied.
	target := PlanTarget("/tmp/explicit.sql", "SQL01", "Job", testRunContext(), true)

	if target.Type != TargetConsole {
		t.Errorf("Type = %q, want %q", target.Type, TargetConsole)
	}
	if target.Path != "" {
		t.Errorf("Path = %q, want empty", target.Path)
	}
	if target.String() != "console" {
		t.Errorf("String() = %q, want %q", target.String(), "console")
	}
}

func TestPlanTarget_ExplicitPath(t *testing.T) {
	target := PlanTarget("/tmp/out.sql", "SQL01", "Job", testRunContext(), false)

	if target.Type != TargetFile {
		t.Errorf("Type = %q, want %q", target.Type, TargetFile)
	}
	if target.Path != "/tmp/out.sql" {
		t.Errorf("Path = %q, want %q", target.Path, "/tmp/out.sql")
	}
}

func TestPlanTarget_DerivedPath(t *testing.T) {
	tests := []struct {
		name   string
		server string
		kind   string
		want   string
	}{
		{"plain server", "SQL01", "Job", "SQL01-Job-20260314092653.sql"},
		{"named instance", `HOST\INSTANCE`, "Login", "HOST$INSTANCE-Login-20260314092653.sql"},
		{"multiple backslashes", `A\B\C`, "Job", "A$B$C-Job-20260314092653.sql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := PlanTarget("", tt.server, tt.kind, testRunContext(), false)
			if target.Path != tt.want {
				t.Errorf("Path = %q, want %q", target.Path, tt.want)
			}
		})
	}
}

func TestPlanTarget_SharedTimestamp(t *testing.T) {
	rc := testRunContext()
	first := PlanTarget("", "SQL01", "Job", rc, false)
	second := PlanTarget("", "SQL01", "Job", rc, false)

	if first.Path != second.Path {
		t.Errorf("paths differ within one run: %q vs %q", first.Path, second.Path)
	}
}

func TestTarget_CheckConflict(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.sql")
	if err := os.WriteFile(existing, []byte("-- old"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	target := &Target{Type: TargetFile, Path: existing}

	err := target.CheckConflict(false)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("CheckConflict() = %v, want *ConflictError", err)
	}
	if conflict.Path != existing {
		t.Errorf("conflict.Path = %q, want %q", conflict.Path, existing)
	}

	// Append mode suppresses the check entirely.
	if err := target.CheckConflict(true); err != nil {
		t.Errorf("CheckConflict(append) = %v, want nil", err)
	}

	// A missing file never conflicts.
	fresh := &Target{Type: TargetFile, Path: filepath.Join(dir, "fresh.sql")}
	if err := fresh.CheckConflict(false); err != nil {
		t.Errorf("CheckConflict(missing) = %v, want nil", err)
	}

	// Console targets never conflict.
	console := &Target{Type: TargetConsole}
	if err := console.CheckConflict(false); err != nil {
		t.Errorf("CheckConflict(console) = %v, want nil", err)
	}
}

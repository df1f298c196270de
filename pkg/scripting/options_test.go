package scripting

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.BatchSeparator != "GO" {
		t.Errorf("BatchSeparator = %q, want %q", opts.BatchSeparator, "GO")
	}
	if !opts.SchemaQualify {
		t.Error("SchemaQualify should default to true")
	}
	if opts.ScriptDrops {
		t.Error("ScriptDrops should default to false")
	}
	if opts.NoCommandTerminator {
		t.Error("NoCommandTerminator should default to false")
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	content := `
script_drops: true
include_database_context: true
batch_separator: ";"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write options file: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}

	if !opts.ScriptDrops {
		t.Error("ScriptDrops = false, want true")
	}
	if !opts.IncludeDatabaseContext {
		t.Error("IncludeDatabaseContext = false, want true")
	}
	if opts.BatchSeparator != ";" {
		t.Errorf("BatchSeparator = %q, want %q", opts.BatchSeparator, ";")
	}
	// Unset fields keep defaults.
	if !opts.SchemaQualify {
		t.Error("SchemaQualify should keep its default when unset")
	}
}

func TestLoadOptions_EmptySeparatorFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte(`batch_separator: ""`), 0o644); err != nil {
		t.Fatalf("failed to write options file: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}
	if opts.BatchSeparator != "GO" {
		t.Errorf("BatchSeparator = %q, want fallback %q", opts.BatchSeparator, "GO")
	}
}

func TestLoadOptions_MissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadOptions() expected error for missing file")
	}
}

func TestLoadOptions_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("failed to write options file: %v", err)
	}

	if _, err := LoadOptions(path); err == nil {
		t.Fatal("LoadOptions() expected error for invalid YAML")
	}
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"scribehq/sqlscribe/pkg/config"
	"scribehq/sqlscribe/pkg/export"
)

func TestReloadEnabled(t *testing.T) {
	tests := []struct {
		name        string
		flagChanged bool
		flagValue   bool
		cfgValue    bool
		want        bool
	}{
		{"config off, flag untouched", false, false, false, false},
		{"config on, flag untouched", false, false, true, true},
		{"explicit --reload overrides config off", true, true, false, true},
		{"explicit --reload=false overrides config on", true, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reloadEnabled(tt.flagChanged, tt.flagValue, tt.cfgValue); got != tt.want {
				t.Errorf("reloadEnabled(%v, %v, %v) = %v, want %v",
					tt.flagChanged, tt.flagValue, tt.cfgValue, got, tt.want)
			}
		})
	}
}

func TestNewWatchRunner_ConfigDefaults(t *testing.T) {
	optionsPath := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(optionsPath, []byte("include_headers: true\n"), 0o644); err != nil {
		t.Fatalf("failed to write options file: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Export.Encoding = "unicode"
	cfg.Export.OptionsFile = optionsPath

	runner, err := newWatchRunner(cfg, "/var/exports", nil, nil)
	if err != nil {
		t.Fatalf("newWatchRunner() error = %v", err)
	}

	if runner.Encoding != export.EncodingUnicode {
		t.Errorf("runner.Encoding = %q, want unicode", runner.Encoding)
	}
	if runner.Options == nil || !runner.Options.IncludeHeaders {
		t.Error("runner.Options should come from the configured options file")
	}
	if runner.OutputDir != "/var/exports" {
		t.Errorf("runner.OutputDir = %q, want /var/exports", runner.OutputDir)
	}
	if runner.CommandName != "sqlscribe watch" {
		t.Errorf("runner.CommandName = %q", runner.CommandName)
	}
}

func TestNewWatchRunner_BadEncoding(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Export.Encoding = "latin1"

	if _, err := newWatchRunner(cfg, "", nil, nil); err == nil {
		t.Fatal("newWatchRunner() expected error for invalid encoding")
	}
}

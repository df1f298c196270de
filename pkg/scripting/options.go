package scripting

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options is the scripting-options value handed to each object's Script
// method. It is constructed once per run and passed through the export
// pipeline unchanged; the pipeline itself never reads or mutates it.
type Options struct {
	// IncludeHeaders prepends an object-level descriptive comment to each
	// scripted definition.
	IncludeHeaders bool `yaml:"include_headers"`

	// IncludeDatabaseContext emits a USE [database] statement before
	// definitions that belong to a database.
	IncludeDatabaseContext bool `yaml:"include_database_context"`

	// ScriptDrops emits DROP statements instead of CREATE statements.
	ScriptDrops bool `yaml:"script_drops"`

	// IncludeIfNotExists guards CREATE statements with an existence check.
	IncludeIfNotExists bool `yaml:"include_if_not_exists"`

	// SchemaQualify qualifies object names with their schema.
	SchemaQualify bool `yaml:"schema_qualify"`

	// NoCommandTerminator suppresses the batch separator after each
	// definition.
	NoCommandTerminator bool `yaml:"no_command_terminator"`

	// BatchSeparator is the batch terminator keyword (normally "GO").
	BatchSeparator string `yaml:"batch_separator"`
}

// DefaultOptions returns the scripting options used when the caller supplies
// none.
func DefaultOptions() *Options {
	return &Options{
		IncludeHeaders:         false,
		IncludeDatabaseContext: false,
		ScriptDrops:            false,
		IncludeIfNotExists:     false,
		SchemaQualify:          true,
		NoCommandTerminator:    false,
		BatchSeparator:         "GO",
	}
}

// LoadOptions reads scripting options from a YAML file. Fields absent from
// the file keep their default values.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %q: %w", path, err)
	}

	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse options file %q: %w", path, err)
	}

	if opts.BatchSeparator == "" {
		opts.BatchSeparator = "GO"
	}

	return opts, nil
}

package config

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"scribehq/sqlscribe/pkg/export"
)

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks the configuration for errors and returns the first one
// found.
func Validate(cfg *Config) error {
	enc, err := export.ParseEncoding(cfg.Export.Encoding)
	if err != nil {
		return fmt.Errorf("export.encoding: %w", err)
	}
	if enc == export.EncodingUTF7 {
		return fmt.Errorf("export.encoding: utf7 has no supported encoder")
	}

	if cfg.Journal.Enabled {
		if cfg.Journal.Path == "" {
			return fmt.Errorf("journal.path is required when the journal is enabled")
		}
		if cfg.Journal.MaxOpenConns < 1 {
			return fmt.Errorf("journal.max_open_conns must be at least 1, got %d", cfg.Journal.MaxOpenConns)
		}
		if cfg.Journal.BusyTimeout < 0 {
			return fmt.Errorf("journal.busy_timeout must not be negative, got %s", cfg.Journal.BusyTimeout)
		}
	}

	if cfg.Schedule.Cron != "" {
		if _, err := cron.ParseStandard(cfg.Schedule.Cron); err != nil {
			return fmt.Errorf("schedule.cron: invalid expression %q: %w", cfg.Schedule.Cron, err)
		}
	}

	if cfg.Metrics.Enabled {
		if cfg.Metrics.ListenAddress == "" {
			return fmt.Errorf("metrics.listen_address is required when metrics are enabled")
		}
		if cfg.Metrics.Namespace == "" {
			return fmt.Errorf("metrics.namespace is required when metrics are enabled")
		}
	}

	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", cfg.Logging.Level)
	}
	if !validLogFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format must be text or json, got %q", cfg.Logging.Format)
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path. It
// unmarshals on top of the default configuration, applies remaining defaults,
// validates, and returns any errors. Environment variables are not consulted;
// use LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Variables follow the naming convention
// SQLSCRIBE_SECTION_FIELD (e.g. SQLSCRIBE_JOURNAL_PATH) and always take
// precedence over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// LoadConfigOrDefault behaves like LoadConfigWithEnvOverrides but falls back
// to the default configuration when the file does not exist. Commands use it
// so that running without a config file just works.
func LoadConfigOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		if err := Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
		return cfg, nil
	}
	return LoadConfigWithEnvOverrides(path)
}

// applyEnvOverrides applies environment variable overrides to the
// configuration.
func applyEnvOverrides(cfg *Config) {
	// Export overrides
	if val := os.Getenv("SQLSCRIBE_EXPORT_ENCODING"); val != "" {
		cfg.Export.Encoding = val
	}
	if val := os.Getenv("SQLSCRIBE_EXPORT_OUTPUT_DIR"); val != "" {
		cfg.Export.OutputDir = val
	}
	if val := os.Getenv("SQLSCRIBE_EXPORT_OPTIONS_FILE"); val != "" {
		cfg.Export.OptionsFile = val
	}

	// Journal overrides
	if val := os.Getenv("SQLSCRIBE_JOURNAL_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Journal.Enabled = b
		}
	}
	if val := os.Getenv("SQLSCRIBE_JOURNAL_PATH"); val != "" {
		cfg.Journal.Path = val
	}
	if val := os.Getenv("SQLSCRIBE_JOURNAL_BUSY_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Journal.BusyTimeout = d
		}
	}

	// Schedule overrides
	if val := os.Getenv("SQLSCRIBE_SCHEDULE_CRON"); val != "" {
		cfg.Schedule.Cron = val
	}
	if val := os.Getenv("SQLSCRIBE_SCHEDULE_INVENTORY"); val != "" {
		cfg.Schedule.Inventory = val
	}
	if val := os.Getenv("SQLSCRIBE_SCHEDULE_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Schedule.Watch = b
		}
	}

	// Metrics overrides
	if val := os.Getenv("SQLSCRIBE_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("SQLSCRIBE_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Metrics.ListenAddress = val
	}

	// Logging overrides
	if val := os.Getenv("SQLSCRIBE_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("SQLSCRIBE_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
}

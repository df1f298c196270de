package config

import "time"

// Default values for configuration fields.
const (
	// Export defaults
	DefaultExportEncoding = "utf8"

	// Journal defaults
	DefaultJournalEnabled      = false
	DefaultJournalPath         = "data/journal.db"
	DefaultJournalMaxOpenConns = 5
	DefaultJournalWALMode      = true
	DefaultJournalBusyTimeout  = 5 * time.Second

	// Schedule defaults
	DefaultScheduleCron = "0 3 * * *"

	// Metrics defaults
	DefaultMetricsEnabled       = false
	DefaultMetricsListenAddress = "127.0.0.1:9823"
	DefaultMetricsNamespace     = "sqlscribe"

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "text"
)

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	// Boolean defaults that ApplyDefaults cannot express; LoadConfig
	// unmarshals on top of this value so explicit false still wins.
	cfg.Journal.WALMode = DefaultJournalWALMode
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Export.Encoding == "" {
		cfg.Export.Encoding = DefaultExportEncoding
	}

	if cfg.Journal.Path == "" {
		cfg.Journal.Path = DefaultJournalPath
	}
	if cfg.Journal.MaxOpenConns == 0 {
		cfg.Journal.MaxOpenConns = DefaultJournalMaxOpenConns
	}
	if cfg.Journal.BusyTimeout == 0 {
		cfg.Journal.BusyTimeout = DefaultJournalBusyTimeout
	}

	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = DefaultScheduleCron
	}

	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}
}

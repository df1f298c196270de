package config

import "time"

// Config is the root configuration for sqlscribe.
type Config struct {
	Export   ExportConfig   `yaml:"export"`
	Journal  JournalConfig  `yaml:"journal"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ExportConfig controls export defaults applied when flags are absent.
type ExportConfig struct {
	// Encoding is the default text encoding for file writes.
	Encoding string `yaml:"encoding"`

	// OutputDir receives auto-derived script files. Empty means the
	// current working directory.
	OutputDir string `yaml:"output_dir"`

	// OptionsFile points to a scripting-options YAML file loaded when the
	// --options flag is not given.
	OptionsFile string `yaml:"options_file"`
}

// JournalConfig controls the export-run journal.
type JournalConfig struct {
	// Enabled turns journal recording on.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path.
	Path string `yaml:"path"`

	// MaxOpenConns is the maximum number of open connections.
	MaxOpenConns int `yaml:"max_open_conns"`

	// WALMode enables Write-Ahead Logging mode.
	WALMode bool `yaml:"wal_mode"`

	// BusyTimeout is the duration to wait when the database is locked.
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// ScheduleConfig controls watch mode.
type ScheduleConfig struct {
	// Cron is the standard cron expression driving scheduled exports.
	Cron string `yaml:"cron"`

	// Inventory is the inventory file exported on each tick.
	Inventory string `yaml:"inventory"`

	// Watch reloads the inventory when the file changes between ticks.
	Watch bool `yaml:"watch"`
}

// MetricsConfig controls the Prometheus endpoint in watch mode.
type MetricsConfig struct {
	// Enabled serves /metrics in watch mode.
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the metrics HTTP listen address.
	ListenAddress string `yaml:"listen_address"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is the handler format ("text", "json").
	Format string `yaml:"format"`
}

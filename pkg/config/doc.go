// Package config loads, validates and holds sqlscribe's tool configuration.
//
// Configuration comes from a YAML file with environment variable overrides
// (SQLSCRIBE_SECTION_FIELD, e.g. SQLSCRIBE_JOURNAL_PATH). Defaults are
// applied before validation, so a missing file yields a fully usable default
// configuration.
//
//	cfg, err := config.LoadConfigOrDefault("sqlscribe.yaml")
//
// Commands share one configuration through the thread-safe singleton
// (Initialize / GetConfig); tests should prefer explicit Config values via
// SetConfig.
package config

package config

import (
	"fmt"
	"sync"
)

var (
	instance *Config
	mu       sync.RWMutex
	once     sync.Once
)

// Initialize loads the global configuration exactly once. Later calls return
// the error from the first attempt.
func Initialize(path string) error {
	var initErr error
	once.Do(func() {
		cfg, err := LoadConfigOrDefault(path)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize configuration: %w", err)
			return
		}
		mu.Lock()
		instance = cfg
		mu.Unlock()
	})
	return initErr
}

// GetConfig returns the global configuration, or defaults when Initialize has
// not been called.
func GetConfig() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return DefaultConfig()
	}
	return instance
}

// SetConfig replaces the global configuration. Intended for tests.
func SetConfig(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = cfg
}

package config

import "sync"

var (
	globalMu     sync.RWMutex
	globalConfig *Config
)

// Initialize sets up the global configuration
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	globalMu.Lock()
	globalConfig = cfg
	globalMu.Unlock()
}

// Get returns the current configuration
func Get() *Config {
	globalMu.RLock()
	cfg := globalConfig
	globalMu.RUnlock()
	if cfg == nil {
		Initialize(nil)
		return Get()
	}
	return cfg
}

// GetOutput returns output configuration
func GetOutput() Output {
	return Get().Output
}

// GetInput returns input configuration
func GetInput() Input {
	return Get().Input
}

// GetLinks returns link configuration
func GetLinks() Links {
	return Get().Links
}

// GetParser returns parser configuration
func GetParser() Parser {
	return Get().Parser
}

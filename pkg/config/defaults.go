package config

import "os"

// Default values for configuration.
const (
	DefaultColor        = ColorAuto
	DefaultMaxLineBytes = 1024 * 1024
)

// Environment variable names.
const (
	EnvConfig = "GREPLITE_CONFIG"
	EnvColor  = "GREPLITE_COLOR"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Color:        DefaultColor,
		MaxLineBytes: DefaultMaxLineBytes,
		ExcludeDirs:  []string{".git"},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	// Override color mode from environment if set
	if mode := os.Getenv(EnvColor); mode != "" {
		c.Color = mode
	}
}

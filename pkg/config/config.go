package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. An empty path falls back
// to the GREPLITE_CONFIG environment variable; when neither names a file,
// the defaults are used.
func Load(_ context.Context, path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if !ValidColor(cfg.Color) {
		return fmt.Errorf("color: invalid mode %q (must be auto, always, or never)", cfg.Color)
	}

	if cfg.MaxLineBytes < 1 {
		return fmt.Errorf("max_line_bytes: must be >= 1, got %d", cfg.MaxLineBytes)
	}

	if cfg.Context.Before < 0 {
		return fmt.Errorf("context.before: must be >= 0, got %d", cfg.Context.Before)
	}

	if cfg.Context.After < 0 {
		return fmt.Errorf("context.after: must be >= 0, got %d", cfg.Context.After)
	}

	return nil
}

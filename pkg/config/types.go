// Package config provides configuration loading and validation for greplite.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Color selects when match highlighting is applied: auto, always,
	// or never.
	Color string `yaml:"color,omitempty"`

	// MaxLineBytes bounds the length of a single input line.
	MaxLineBytes int `yaml:"max_line_bytes,omitempty"`

	// ExcludeDirs lists directory names skipped during recursive search.
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty"`

	// Context sets default context window sizes, overridden by flags.
	Context ContextConfig `yaml:"context,omitempty"`
}

// ContextConfig holds default context window sizes.
type ContextConfig struct {
	Before int `yaml:"before,omitempty"`
	After  int `yaml:"after,omitempty"`
}

// Color modes.
const (
	// ColorAuto highlights only when writing to a terminal (default).
	ColorAuto = "auto"
	// ColorAlways highlights unconditionally.
	ColorAlways = "always"
	// ColorNever disables highlighting.
	ColorNever = "never"
)

// ValidColor reports whether mode names a supported color mode.
func ValidColor(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

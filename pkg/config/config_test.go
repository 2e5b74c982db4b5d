package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
color: never
max_line_bytes: 4096
exclude_dirs:
  - node_modules
  - vendor
context:
  before: 2
  after: 3
`
	path := writeTempFile(t, "config.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
	if cfg.MaxLineBytes != 4096 {
		t.Errorf("MaxLineBytes = %d, want 4096", cfg.MaxLineBytes)
	}
	if want := []string{"node_modules", "vendor"}; !reflect.DeepEqual(cfg.ExcludeDirs, want) {
		t.Errorf("ExcludeDirs = %v, want %v", cfg.ExcludeDirs, want)
	}
	if cfg.Context.Before != 2 {
		t.Errorf("Context.Before = %d, want 2", cfg.Context.Before)
	}
	if cfg.Context.After != 3 {
		t.Errorf("Context.After = %d, want 3", cfg.Context.After)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "partial.yaml", "color: always\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Color != ColorAlways {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAlways)
	}
	if cfg.MaxLineBytes != DefaultMaxLineBytes {
		t.Errorf("MaxLineBytes = %d, want default %d", cfg.MaxLineBytes, DefaultMaxLineBytes)
	}
	if want := []string{".git"}; !reflect.DeepEqual(cfg.ExcludeDirs, want) {
		t.Errorf("ExcludeDirs = %v, want default %v", cfg.ExcludeDirs, want)
	}
}

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Color != DefaultColor {
		t.Errorf("Color = %q, want default %q", cfg.Color, DefaultColor)
	}
	if cfg.Context.Before != 0 || cfg.Context.After != 0 {
		t.Errorf("Context = %+v, want zero windows", cfg.Context)
	}
}

func TestLoad_PathFromEnvironment(t *testing.T) {
	path := writeTempFile(t, "env.yaml", "max_line_bytes: 512\n")
	os.Setenv(EnvConfig, path)
	defer os.Unsetenv(EnvConfig)

	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxLineBytes != 512 {
		t.Errorf("MaxLineBytes = %d, want 512", cfg.MaxLineBytes)
	}
}

func TestLoad_ColorFromEnvironmentWins(t *testing.T) {
	path := writeTempFile(t, "color.yaml", "color: always\n")
	os.Setenv(EnvColor, ColorNever)
	defer os.Unsetenv(EnvColor)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want environment override %q", cfg.Color, ColorNever)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	content := `invalid: yaml: content: [`
	path := writeTempFile(t, "invalid.yaml", content)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_InvalidColorRejected(t *testing.T) {
	path := writeTempFile(t, "bad-color.yaml", "color: sometimes\n")
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid color mode")
	}
}

func TestValidate_InvalidColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = "rainbow"
	if err := Validate(cfg); err == nil {
		t.Error("Validate() expected error for invalid color mode")
	}
}

func TestValidate_MaxLineBytesTooSmall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLineBytes = 0
	if err := Validate(cfg); err == nil {
		t.Error("Validate() expected error for max_line_bytes < 1")
	}
}

func TestValidate_NegativeContext(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Context.Before = -1
	if err := Validate(cfg); err == nil {
		t.Error("Validate() expected error for negative context.before")
	}

	cfg = DefaultConfig()
	cfg.Context.After = -1
	if err := Validate(cfg); err == nil {
		t.Error("Validate() expected error for negative context.after")
	}
}

func TestValidColor(t *testing.T) {
	tests := []struct {
		mode string
		want bool
	}{
		{ColorAuto, true},
		{ColorAlways, true},
		{ColorNever, true},
		{"", false},
		{"sometimes", false},
	}

	for _, tt := range tests {
		if got := ValidColor(tt.mode); got != tt.want {
			t.Errorf("ValidColor(%q) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}
	if cfg.MaxLineBytes != DefaultMaxLineBytes {
		t.Errorf("MaxLineBytes = %d, want %d", cfg.MaxLineBytes, DefaultMaxLineBytes)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) error = %v", err)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

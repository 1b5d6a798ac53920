package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/timothywong731/depthmap2mesh/pkg/heightfield"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Carve.WidthMM != 100 {
		t.Errorf("expected width 100, got %g", cfg.Carve.WidthMM)
	}
	if cfg.Carve.DepthMM != 5 {
		t.Errorf("expected depth 5, got %g", cfg.Carve.DepthMM)
	}
	if cfg.Carve.BaseThicknessMM != 2 {
		t.Errorf("expected base thickness 2, got %g", cfg.Carve.BaseThicknessMM)
	}
	if cfg.Resolution != "" {
		t.Errorf("expected empty resolution, got %q", cfg.Resolution)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
input: relief.png
output: relief.stl
resolution: 400x300
carve:
  width_mm: 120
  depth_mm: 8
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Input != "relief.png" {
		t.Errorf("expected input relief.png, got %q", cfg.Input)
	}
	if cfg.Output != "relief.stl" {
		t.Errorf("expected output relief.stl, got %q", cfg.Output)
	}
	if cfg.Carve.WidthMM != 120 {
		t.Errorf("expected width 120, got %g", cfg.Carve.WidthMM)
	}
	if cfg.Carve.DepthMM != 8 {
		t.Errorf("expected depth 8, got %g", cfg.Carve.DepthMM)
	}
	// Untouched fields keep their defaults.
	if cfg.Carve.BaseThicknessMM != 2 {
		t.Errorf("expected base thickness 2, got %g", cfg.Carve.BaseThicknessMM)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %q", cfg.Logging.Level)
	}

	res, err := cfg.ParseResolution()
	if err != nil {
		t.Fatalf("ParseResolution failed: %v", err)
	}
	if res != (heightfield.Resolution{Width: 400, Height: 300}) {
		t.Errorf("expected 400x300, got %v", res)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Input = "in.png"
		cfg.Output = "out.stl"
		return cfg
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing input", func(c *Config) { c.Input = "" }},
		{"missing output", func(c *Config) { c.Output = "" }},
		{"zero width", func(c *Config) { c.Carve.WidthMM = 0 }},
		{"negative depth", func(c *Config) { c.Carve.DepthMM = -1 }},
		{"negative base", func(c *Config) { c.Carve.BaseThicknessMM = -0.5 }},
		{"fractional resolution", func(c *Config) { c.Resolution = "512.5" }},
		{"garbage resolution", func(c *Config) { c.Resolution = "big" }},
	}

	for _, tt := range tests {
		cfg := valid()
		tt.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: error = %v, want ErrInvalidConfiguration", tt.name, err)
		}
	}
}

// Package config handles converter configuration loading and validation.
package config

import (
	"errors"
	"fmt"

	"github.com/timothywong731/depthmap2mesh/pkg/heightfield"
)

// ErrInvalidConfiguration reports a configuration that cannot drive a
// conversion run.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds all converter settings.
type Config struct {
	// Input is the path to the grayscale depthmap image.
	Input string `yaml:"input"`
	// Output is the path the STL mesh is written to.
	Output string `yaml:"output"`
	// Resolution is the optional mesh resolution specifier: empty keeps
	// the image resolution, "W" scales to a width preserving aspect
	// ratio, "WxH" forces an exact grid size.
	Resolution string        `yaml:"resolution"`
	Carve      CarveConfig   `yaml:"carve"`
	Logging    LoggingConfig `yaml:"logging"`
}

// CarveConfig holds the physical dimensions of the solid in millimetres.
type CarveConfig struct {
	WidthMM         float64 `yaml:"width_mm"`
	DepthMM         float64 `yaml:"depth_mm"`
	BaseThicknessMM float64 `yaml:"base_thickness_mm"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Carve: CarveConfig{
			WidthMM:         100,
			DepthMM:         5,
			BaseThicknessMM: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ParseResolution parses the configured resolution specifier.
func (c *Config) ParseResolution() (heightfield.Resolution, error) {
	return heightfield.ParseResolution(c.Resolution)
}

// Validate checks that the configuration can drive a conversion run.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: no input depthmap given", ErrInvalidConfiguration)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: no output path given", ErrInvalidConfiguration)
	}
	if c.Carve.WidthMM <= 0 {
		return fmt.Errorf("%w: width %g mm, must be positive", ErrInvalidConfiguration, c.Carve.WidthMM)
	}
	if c.Carve.DepthMM <= 0 {
		return fmt.Errorf("%w: depth %g mm, must be positive", ErrInvalidConfiguration, c.Carve.DepthMM)
	}
	if c.Carve.BaseThicknessMM < 0 {
		return fmt.Errorf("%w: base thickness %g mm, must not be negative", ErrInvalidConfiguration, c.Carve.BaseThicknessMM)
	}
	if _, err := c.ParseResolution(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

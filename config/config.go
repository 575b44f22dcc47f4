// Package config provides configuration parsing for streamtab.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the streamtab configuration.
type Config struct {
	// Render holds layout and value-rendering settings.
	Render RenderConfig `yaml:"render"`

	// UpdateInterval is a duration string (e.g. "100ms", "1s") giving the
	// minimum delay between live redraws of an in-progress aggregate.
	UpdateInterval string `yaml:"update_interval"`
}

// RenderConfig holds layout and value-rendering settings.
type RenderConfig struct {
	// FloatingPoints is the number of decimal places for float values.
	FloatingPoints int `yaml:"floating_points"`
	// MinBuffer is the slack under which a column keeps its current width.
	MinBuffer int `yaml:"min_buffer"`
	// MaxBuffer is the slack granted when a column width grows.
	MaxBuffer int `yaml:"max_buffer"`
	// Format is an optional record template, e.g. "{level} {msg:<40.40}".
	// When empty, records render as aligned [name=value] columns.
	Format string `yaml:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			FloatingPoints: 2,
			MinBuffer:      1,
			MaxBuffer:      4,
		},
		UpdateInterval: "100ms",
	}
}

// Load reads a YAML config file, layered over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges and the interval duration string.
func (c *Config) Validate() error {
	if c.Render.FloatingPoints < 0 {
		return fmt.Errorf("floating_points must be >= 0, got %d", c.Render.FloatingPoints)
	}
	if c.Render.MinBuffer < 0 {
		return fmt.Errorf("min_buffer must be >= 0, got %d", c.Render.MinBuffer)
	}
	if c.Render.MaxBuffer < c.Render.MinBuffer {
		return fmt.Errorf("max_buffer (%d) must be >= min_buffer (%d)", c.Render.MaxBuffer, c.Render.MinBuffer)
	}
	if _, err := c.Interval(); err != nil {
		return err
	}
	return nil
}

// Interval parses UpdateInterval into a time.Duration.
func (c *Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.UpdateInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid update_interval %q: %w", c.UpdateInterval, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("update_interval must be >= 0, got %s", c.UpdateInterval)
	}
	return d, nil
}

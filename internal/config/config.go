// Package config handles spheretool configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Faultbox/quadsphere/pkg/pictype"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all tool settings.
type Config struct {
	Sphere      SphereConfig           `yaml:"sphere"`
	Projections map[string]pictype.Fov `yaml:"projections,omitempty"` // max fov overrides by short name
	Output      OutputConfig           `yaml:"output"`
	Logging     LoggingConfig          `yaml:"logging"`
}

// SphereConfig holds mesh settings.
type SphereConfig struct {
	Divisions int `yaml:"divisions"`
}

// OutputConfig holds settings for files the tool writes.
type OutputConfig struct {
	Dir            string `yaml:"dir"`
	PlotSize       int    `yaml:"plot_size"`       // uvmap image edge in pixels
	PlotProjection string `yaml:"plot_projection"` // default uvmap projection
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sphere: SphereConfig{
			Divisions: 30,
		},
		Output: OutputConfig{
			Dir:            ".",
			PlotSize:       1024,
			PlotProjection: "equi",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values that cannot be used as given.
func (c *Config) Validate() error {
	if c.Sphere.Divisions < 1 {
		return fmt.Errorf("sphere.divisions %d: %w", c.Sphere.Divisions, ErrInvalidConfig)
	}
	if c.Output.PlotSize < 16 {
		return fmt.Errorf("output.plot_size %d: %w", c.Output.PlotSize, ErrInvalidConfig)
	}
	return nil
}

// Catalog returns the default picture type table with the configured field
// of view overrides applied.
func (c *Config) Catalog() (*pictype.Table, error) {
	table := pictype.Default()

	// sorted so errors are reproducible
	names := make([]string, 0, len(c.Projections))
	for name := range c.Projections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t, err := table.WithMaxFov(name, c.Projections[name])
		if err != nil {
			return nil, fmt.Errorf("projections.%s: %w", name, err)
		}
		table = t
	}
	return table, nil
}

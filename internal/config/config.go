// Package config holds the typeguard.yaml configuration and the constants
// shared by the CLI and the library glue.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/typeguard/pkg/typeguard"
)

// Config represents the top-level typeguard.yaml configuration.
type Config struct {
	// Enabled toggles all checking. Defaults to true when omitted.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Audit configures the violation trail.
	Audit Audit `yaml:"audit,omitempty"`

	// Color controls CLI output coloring: auto (default), always, never.
	Color string `yaml:"color,omitempty"`
}

// Audit configures violation recording.
type Audit struct {
	// Enabled turns violation recording on.
	Enabled bool `yaml:"enabled,omitempty"`

	// Path is the SQLite database file. Defaults to typeguard.db.
	Path string `yaml:"path,omitempty"`
}

// Parse decodes configuration from yaml bytes and applies defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path. A missing file is
// not an error: it yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

func (c *Config) applyDefaults() {
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.Audit.Path == "" {
		c.Audit.Path = DefaultAuditPath
	}
}

// Validate checks the configuration for specification errors.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return typeguard.NewSpecificationError("invalid color mode %q (want auto, always, or never)", c.Color)
	}
	return nil
}

// IsEnabled resolves the effective enable state: the environment kill
// switch wins, then the file setting, then the default (on).
func (c *Config) IsEnabled() bool {
	if os.Getenv(EnvDisable) == "1" {
		return false
	}
	if c.Enabled != nil {
		return *c.Enabled
	}
	return true
}

// Apply pushes the effective enable state into the engine.
func (c *Config) Apply() {
	if c.IsEnabled() {
		typeguard.Enable()
	} else {
		typeguard.Disable()
	}
}

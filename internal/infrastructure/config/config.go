// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/buildcalc/internal/domain/entities"
	"github.com/ersonp/buildcalc/internal/domain/tables"
)

const (
	// DefaultConfigDir is the directory name for buildcalc configuration.
	DefaultConfigDir = ".buildcalc"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Environment variables that override the config file.
const (
	EnvMaxFractionDigits = "BUILDCALC_MAX_FRACTION_DIGITS"
	EnvUseCommas         = "BUILDCALC_USE_COMMAS"
)

// Config holds user display preferences (read-only after load).
type Config struct {
	Format FormatConfig `yaml:"format"`
	// Units maps a kind name to the preferred display unit for that kind.
	Units     map[string]string `yaml:"units,omitempty"`
	Composite string            `yaml:"composite,omitempty"`
}

// FormatConfig holds number formatting defaults.
type FormatConfig struct {
	MaxFractionDigits int  `yaml:"max_fraction_digits"`
	MinFractionDigits int  `yaml:"min_fraction_digits"`
	UseCommas         bool `yaml:"use_commas"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Format: FormatConfig{
			MaxFractionDigits: 4,
			MinFractionDigits: 0,
			UseCommas:         true,
		},
		Units: map[string]string{
			entities.KindLength.String():  "ft",
			entities.KindArea.String():    "ft²",
			entities.KindVolume.String():  "cu yd",
			entities.KindAngle.String():   "deg",
			entities.KindMass.String():    "lb",
			entities.KindDensity.String(): "lb/cu ft",
		},
		Composite: string(entities.CompositeFeetInches),
	}
}

// Load loads configuration from the .buildcalc directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(configFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvMaxFractionDigits); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMaxFractionDigits, err)
		}
		c.Format.MaxFractionDigits = n
	}
	if v := os.Getenv(EnvUseCommas); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvUseCommas, err)
		}
		c.Format.UseCommas = b
	}
	return nil
}

// Validate checks that preferred units and the composite scheme exist.
func (c *Config) Validate() error {
	if c.Format.MaxFractionDigits < 0 || c.Format.MinFractionDigits < 0 {
		return fmt.Errorf("fraction digits must not be negative")
	}

	for kindName, symbol := range c.Units {
		kind, err := entities.ParseKind(kindName)
		if err != nil {
			return fmt.Errorf("units: %w", err)
		}
		if _, err := tables.Default().Lookup(kind, symbol); err != nil {
			return fmt.Errorf("units.%s: %w", kindName, err)
		}
	}

	if c.Composite != "" {
		if _, err := entities.ParseCompositeKind(c.Composite); err != nil {
			return fmt.Errorf("composite: %w", err)
		}
	}
	return nil
}

// PreferredUnit returns the configured display unit for a kind, or "".
func (c *Config) PreferredUnit(kind entities.Kind) string {
	if symbol, ok := c.Units[kind.String()]; ok {
		return symbol
	}
	// "weight" is accepted as a key for mass.
	if kind == entities.KindMass {
		return c.Units["weight"]
	}
	return ""
}

// CompositeKind returns the configured composite scheme, defaulting to ft-in.
func (c *Config) CompositeKind() entities.CompositeKind {
	if ck, err := entities.ParseCompositeKind(c.Composite); err == nil {
		return ck
	}
	return entities.CompositeFeetInches
}

// ConfigDir returns the path to the .buildcalc config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

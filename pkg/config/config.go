// Package config loads tool settings from an optional YAML file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/1F47E/sol/pkg/tilt"
	"gopkg.in/yaml.v3"
)

const maxSeasonalOffset = 45.0

// Config holds tool settings. Every field has a default, so no file or
// environment is needed for normal use.
type Config struct {
	LogLevel string   `yaml:"log_level"`
	Color    bool     `yaml:"color"`
	Seasonal Seasonal `yaml:"seasonal"`
}

// Seasonal configures the adjustable-panel model
type Seasonal struct {
	// Offset in degrees applied to the latitude for summer (minus) and winter (plus)
	Offset float64 `yaml:"offset"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Color:    true,
		Seasonal: Seasonal{Offset: tilt.DefaultSeasonalOffset},
	}
}

// Load reads the YAML file at path, when path is not empty, then applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SOL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	if v := os.Getenv("SOL_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SOL_COLOR %q: %w", v, err)
		}
		c.Color = b
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Color = false
	}

	if v := os.Getenv("SOL_SEASONAL_OFFSET"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid SOL_SEASONAL_OFFSET %q: %w", v, err)
		}
		c.Seasonal.Offset = f
	}
	return nil
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if math.IsNaN(c.Seasonal.Offset) || c.Seasonal.Offset < 0 || c.Seasonal.Offset > maxSeasonalOffset {
		return fmt.Errorf("seasonal.offset must be between 0 and %g, got %g", maxSeasonalOffset, c.Seasonal.Offset)
	}
	return nil
}

// SlogLevel parses LogLevel (debug, info, warn, error)
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

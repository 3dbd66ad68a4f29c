// Package config maps SPATIAL_* environment variables onto the pipeline
// and logging configuration used by the CLI. A .env file in the working
// directory is honored when present (loaded by the CLI entry point).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docfield/spatial"
	"github.com/docfield/spatial/internal/logger"
)

// Config holds the CLI's environment-derived settings.
type Config struct {
	// Pipeline threshold overrides. Zero means "use the library default".
	VerticalTolerance  float64
	GapMultiplier      float64
	MinAbsoluteGap     float64
	AlignmentTolerance float64
	FieldSeparator     string

	// Logging configuration.
	LogLevel  string
	LogFormat string
	LogOutput string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		FieldSeparator: os.Getenv("SPATIAL_FIELD_SEPARATOR"),
		LogLevel:       getEnv("SPATIAL_LOG_LEVEL", "info"),
		LogFormat:      getEnv("SPATIAL_LOG_FORMAT", "console"),
		LogOutput:      getEnv("SPATIAL_LOG_OUTPUT", "stderr"),
	}

	var err error
	if cfg.VerticalTolerance, err = getEnvFloat("SPATIAL_VERTICAL_TOLERANCE"); err != nil {
		return nil, err
	}
	if cfg.GapMultiplier, err = getEnvFloat("SPATIAL_GAP_MULTIPLIER"); err != nil {
		return nil, err
	}
	if cfg.MinAbsoluteGap, err = getEnvFloat("SPATIAL_MIN_ABSOLUTE_GAP"); err != nil {
		return nil, err
	}
	if cfg.AlignmentTolerance, err = getEnvFloat("SPATIAL_ALIGNMENT_TOLERANCE"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Options translates the non-zero overrides into pipeline options.
func (c *Config) Options() []spatial.Option {
	var opts []spatial.Option
	if c.VerticalTolerance > 0 {
		opts = append(opts, spatial.WithVerticalTolerance(c.VerticalTolerance))
	}
	if c.GapMultiplier > 0 {
		opts = append(opts, spatial.WithGapMultiplier(c.GapMultiplier))
	}
	if c.MinAbsoluteGap > 0 {
		opts = append(opts, spatial.WithMinAbsoluteGap(c.MinAbsoluteGap))
	}
	if c.AlignmentTolerance > 0 {
		opts = append(opts, spatial.WithAlignmentTolerance(c.AlignmentTolerance))
	}
	if c.FieldSeparator != "" {
		opts = append(opts, spatial.WithFieldSeparator(c.FieldSeparator))
	}
	return opts
}

// GetLoggerConfig returns the logging portion of the configuration.
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		Output: c.LogOutput,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

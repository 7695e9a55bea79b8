package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gosection/internal/beam"
	"github.com/alexiusacademia/gosection/internal/logging"
	"github.com/alexiusacademia/gosection/internal/material"
)

// Environment variables read by Load
const (
	EnvLogLevel        = "GOSECTION_LOG_LEVEL"
	EnvMaterial        = "GOSECTION_MATERIAL"
	EnvDeflectionLimit = "GOSECTION_DEFLECTION_LIMIT"
)

// Config holds defaults that can be overridden by command flags
type Config struct {
	LogLevel        slog.Level
	Material        string
	DeflectionLimit float64
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LogLevel:        slog.LevelWarn,
		Material:        material.DefaultName,
		DeflectionLimit: beam.DefaultDeflectionLimit,
	}
}

// Load reads envFile (if it exists) into the environment and builds the
// configuration from it. Variables already set in the environment win over
// the file. A missing file is not an error.
func Load(envFile string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := logging.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v := os.Getenv(EnvMaterial); v != "" {
		m, err := material.Lookup(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvMaterial, err)
		}
		cfg.Material = m.Name
	}

	if v := os.Getenv(EnvDeflectionLimit); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil || limit <= 0 {
			return cfg, fmt.Errorf("%s: invalid span/deflection ratio %q", EnvDeflectionLimit, v)
		}
		cfg.DeflectionLimit = limit
	}

	return cfg, nil
}

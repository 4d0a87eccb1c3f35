// Package config reads tool defaults from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	OutDir      string     `env:"STOCKICON_OUT_DIR" envDefault:"public/icons"`
	Sizes       []int      `env:"STOCKICON_SIZES" envDefault:"16,48,128" envSeparator:","`
	Workers     int        `env:"STOCKICON_WORKERS" envDefault:"0"`
	LogLevel    slog.Level `env:"STOCKICON_LOG_LEVEL" envDefault:"info"`
	ZipPassword string     `env:"STOCKICON_ZIP_PASSWORD"`
}

// Load parses the environment. Unset variables take their documented
// defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("parse env: STOCKICON_WORKERS must not be negative, got %d", cfg.Workers)
	}
	switch cfg.LogLevel {
	case slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError:
	default:
		return Config{}, fmt.Errorf("parse env: STOCKICON_LOG_LEVEL must be debug, info, warn or error, got %q", cfg.LogLevel.String())
	}
	return cfg, nil
}

// Vars exposes the configuration as kong interpolation variables so that
// command-line defaults follow the environment.
func (c Config) Vars() kong.Vars {
	sizes := make([]string, len(c.Sizes))
	for i, s := range c.Sizes {
		sizes[i] = strconv.Itoa(s)
	}
	return kong.Vars{
		"out_dir":   c.OutDir,
		"sizes":     strings.Join(sizes, ","),
		"workers":   strconv.Itoa(c.Workers),
		"log_level": strings.ToLower(c.LogLevel.String()),
	}
}

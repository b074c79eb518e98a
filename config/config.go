// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/codetesla51/slickstore/store"
)

type Config struct {
	Backend          string        `env:"SLICK_BACKEND" envDefault:"memory"`
	RedisAddr        string        `env:"SLICK_REDIS_ADDR" envDefault:"localhost:6379"`
	DatabaseDSN      string        `env:"SLICK_DATABASE_DSN"`
	SQLitePath       string        `env:"SLICK_SQLITE_PATH" envDefault:"slick.db"`
	MaintainInterval time.Duration `env:"SLICK_MAINTAIN_INTERVAL" envDefault:"1m"`
	LogLevel         string        `env:"SLICK_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaintainInterval <= 0 {
		return Config{}, fmt.Errorf("SLICK_MAINTAIN_INTERVAL must be positive, got %s", cfg.MaintainInterval)
	}
	return cfg, nil
}

// StoreOptions maps the config onto store.Open options.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Backend:     c.Backend,
		RedisAddr:   c.RedisAddr,
		DatabaseDSN: c.DatabaseDSN,
		SQLitePath:  c.SQLitePath,
	}
}

// Level returns the slog level named by LogLevel, falling back to info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

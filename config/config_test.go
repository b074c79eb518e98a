package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetesla51/slickstore/store"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, store.BackendMemory, cfg.Backend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "slick.db", cfg.SQLitePath)
	assert.Equal(t, time.Minute, cfg.MaintainInterval)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SLICK_BACKEND", "sqlite")
	t.Setenv("SLICK_SQLITE_PATH", ":memory:")
	t.Setenv("SLICK_MAINTAIN_INTERVAL", "30s")
	t.Setenv("SLICK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, store.Options{
		Backend:    store.BackendSQLite,
		RedisAddr:  "localhost:6379",
		SQLitePath: ":memory:",
	}, cfg.StoreOptions())
	assert.Equal(t, 30*time.Second, cfg.MaintainInterval)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name     string
		interval string
		errPart  string
	}{
		{"unparseable interval", "soon", "parse env:"},
		{"zero interval", "0s", "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SLICK_MAINTAIN_INTERVAL", tt.interval)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "chatty"}.Level())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.Level())
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/codetesla51/slickstore/codec"
	"github.com/codetesla51/slickstore/config"
	"github.com/codetesla51/slickstore/slick"
	"github.com/codetesla51/slickstore/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "slickstore:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	s, closer, err := store.Open(cfg.StoreOptions())
	if err != nil {
		return err
	}
	defer closer.Close()

	cache := slick.New(s, slick.WithLogger(logger))

	items := map[string]codec.Item{
		"name":    {Expiry: 1200, Value: codec.Text("Greg")},
		"age":     {Expiry: 1200, Value: codec.Number(36)},
		"names":   {Expiry: 1200, Value: codec.Texts("john", "adam", "rachel")},
		"parents": {Expiry: 1200, Value: codec.FromAny(map[string]any{"mother": "Anna", "father": "George"})},
		"stale":   {Expiry: -30, Value: codec.Text("gone after maintain")},
	}
	for key, item := range items {
		if err := cache.Store(key, item); err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
	}

	if err := cache.Maintain(); err != nil {
		return err
	}

	for _, key := range []string{"name", "age", "names", "parents", "stale"} {
		v, err := cache.Retrieve(key)
		if err != nil {
			return fmt.Errorf("retrieve %s: %w", key, err)
		}
		logger.Info("retrieved", "key", key, "kind", v.Kind(), "value", v.String())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("sweeping expired records", "backend", cfg.Backend, "interval", cfg.MaintainInterval)
	slick.NewJanitor(cache, cfg.MaintainInterval).Run(ctx)
	return nil
}

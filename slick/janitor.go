package slick

import (
	"context"
	"sync"
	"time"
)

// Janitor runs Maintain on a fixed interval.
type Janitor struct {
	cache    *Cache
	interval time.Duration
}

func NewJanitor(c *Cache, interval time.Duration) *Janitor {
	if interval <= 0 {
		panic("interval must be greater than 0")
	}
	return &Janitor{
		cache:    c,
		interval: interval,
	}
}

// Run sweeps on every tick until ctx is done. Sweep errors are logged and
// the loop carries on.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := j.cache.Maintain(); err != nil {
				j.cache.logger.Error("maintenance sweep failed", "error", err)
			}
		}
	}
}

// Start runs the janitor in the background. The returned func stops it and
// waits for the current sweep to finish.
func (j *Janitor) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		j.Run(ctx)
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}

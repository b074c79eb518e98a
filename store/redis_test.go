package store

import (
	"os"
	"testing"
)

// RedisStore tests need a disposable Redis database, for example
// SLICK_TEST_REDIS_ADDR=localhost:6379. The database is flushed.
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	addr := os.Getenv("SLICK_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SLICK_TEST_REDIS_ADDR not set")
	}

	rs, err := NewRedisStore(addr)
	if err != nil {
		t.Fatalf("failed to connect to Redis: %v", err)
	}
	if err := rs.Clear(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	t.Cleanup(func() { rs.Close() })
	return rs
}

func TestRedisStore(t *testing.T) {
	runStoreSuite(t, newTestRedisStore(t))
}

func TestRedisStoreNoTTL(t *testing.T) {
	rs := newTestRedisStore(t)

	if err := rs.Set("ttlkey", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	ttl, err := rs.client.TTL(rs.ctx, "ttlkey").Result()
	if err != nil {
		t.Fatalf("TTL failed: %v", err)
	}
	// -1 means the key exists without an expiry
	if ttl != -1 {
		t.Errorf("got TTL %v, want none", ttl)
	}
}

func TestRedisStoreConnectFailure(t *testing.T) {
	_, err := NewRedisStore("127.0.0.1:1")
	if err == nil {
		t.Error("expected error connecting to a closed port")
	}
}

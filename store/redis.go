package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint passed to SCAN while listing keys.
const scanBatch = 100

type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(addr string) (*RedisStore, error) {
	return NewRedisStoreWithOptions(&redis.Options{
		Addr: addr,
	})
}

func NewRedisStoreWithOptions(opts *redis.Options) (*RedisStore, error) {
	client := redis.NewClient(opts)

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisStore) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return "", err
	}

	return val, nil
}

// Set stores a value without a Redis TTL; the record carries its own expiry.
func (r *RedisStore) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Delete removes a key from Redis
func (r *RedisStore) Delete(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Clear flushes the selected Redis database.
func (r *RedisStore) Clear() error {
	return r.client.FlushDB(r.ctx).Err()
}

// Keys walks the keyspace with SCAN, which is O(keyspace) per call.
func (r *RedisStore) Keys() ([]string, error) {
	var keys []string
	iter := r.client.Scan(r.ctx, 0, "*", scanBatch).Iterator()
	for iter.Next(r.ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan keys: %w", err)
	}
	return keys, nil
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.client.Close()
}

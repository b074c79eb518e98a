// Package slick stores typed values with an expiry in any string key/value
// store and sweeps out the ones that have expired.
//
// Values are packed by the codec package into records of the form
//
//	<stored at>|<expiry seconds>|<type tag>|<base64 payload>
//
// so they survive a round trip through stores that only hold text. The
// backing store stays authoritative: nothing is cached in memory.
package slick

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/codetesla51/slickstore/codec"
	"github.com/codetesla51/slickstore/store"
)

// Cache reads and writes records through a backing store.
type Cache struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Cache)

// WithLogger sets the logger used for malformed records and sweeps.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

func New(s store.Store, opts ...Option) *Cache {
	c := &Cache{
		store:  s,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store writes item under key, replacing whatever was there.
func (c *Cache) Store(key string, item codec.Item) error {
	return c.store.Set(key, codec.EncodeAt(item, c.now()))
}

// Retrieve returns the value stored under key. Missing keys and values not
// written by this package come back as a null Value without an error.
// Retrieve does not check expiry; that is Maintain's job.
func (c *Cache) Retrieve(key string) (codec.Value, error) {
	raw, err := c.store.Get(key)
	if errors.Is(err, store.ErrNotFound) {
		return codec.Null(), nil
	}
	if err != nil {
		return codec.Null(), err
	}

	rec, err := codec.Decode(raw)
	if err != nil {
		c.logger.Info("cannot unpack record: invalid format", "key", key)
		return codec.Null(), nil
	}
	return codec.Materialize(rec.Value, rec.Type)
}

// Purge removes key. Purging a missing key does nothing.
func (c *Cache) Purge(key string) error {
	return c.store.Delete(key)
}

// Clear empties the backing store, including keys this package never wrote.
func (c *Cache) Clear() error {
	return c.store.Clear()
}

// Maintain deletes every record whose expiry has been exceeded. Keys
// holding anything other than a record are left alone. Only backing store
// errors are returned.
func (c *Cache) Maintain() error {
	keys, err := c.store.Keys()
	if err != nil {
		return err
	}

	now := c.now()
	removed := 0
	for _, key := range keys {
		raw, err := c.store.Get(key)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if !strings.Contains(raw, codec.Separator) {
			continue
		}

		rec, err := codec.Decode(raw)
		if err != nil || !rec.Expired(now) {
			continue
		}
		if err := c.store.Delete(key); err != nil {
			return err
		}
		removed++
	}

	c.logger.Debug("maintenance sweep finished", "keys", len(keys), "removed", removed)
	return nil
}

package store

import (
	"errors"
	"fmt"
	"io"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

var ErrUnknownBackend = errors.New("unknown store backend")

// Options selects and addresses a backend.
type Options struct {
	Backend     string
	RedisAddr   string
	DatabaseDSN string
	SQLitePath  string
}

// Open connects to the backend named in opts. The returned closer releases
// the connection; it is a no-op for the memory backend.
func Open(opts Options) (Store, io.Closer, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nopCloser{}, nil
	case BackendRedis:
		rs, err := NewRedisStore(opts.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return rs, rs, nil
	case BackendPostgres:
		if opts.DatabaseDSN == "" {
			return nil, nil, fmt.Errorf("postgres backend requires a DSN")
		}
		ds, err := NewDatabaseStore(opts.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return ds, ds, nil
	case BackendSQLite:
		ss, err := NewSQLiteStore(opts.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return ss, ss, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

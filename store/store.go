package store

import "errors"

// ErrNotFound is returned by Get when the key holds nothing.
var ErrNotFound = errors.New("key not found")

// Store is the backing key/value store records are written to. Values are
// opaque strings; expiry lives inside the records, not in the store.
type Store interface {
	// Get retrieves the raw value for a key
	Get(key string) (string, error)

	// Set stores the raw value, replacing any previous one
	Set(key, value string) error

	// Delete removes a key; deleting a missing key is not an error
	Delete(key string) error

	// Clear removes every key, whoever wrote it
	Clear() error

	// Keys lists every key currently stored
	Keys() ([]string, error)
}

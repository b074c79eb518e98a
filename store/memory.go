package store

import (
	"fmt"
	"sort"
	"sync"
)

type MemoryStore struct {
	data map[string]string
	mu   sync.Mutex
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

func (ms *MemoryStore) Get(key string) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	value, exists := ms.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return value, nil
}

func (ms *MemoryStore) Set(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.data[key] = value
	return nil
}

func (ms *MemoryStore) Delete(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.data, key)
	return nil
}

func (ms *MemoryStore) Clear() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	clear(ms.data)
	return nil
}

// Keys returns a sorted snapshot, so callers may mutate the store while
// ranging over it.
func (ms *MemoryStore) Keys() ([]string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	keys := make([]string, 0, len(ms.data))
	for key := range ms.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Len reports how many keys are stored.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return len(ms.data)
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite checks the behavior every backend must share. The store is
// expected to start empty.
func runStoreSuite(t *testing.T, s Store) {
	t.Helper()

	t.Run("get missing", func(t *testing.T) {
		_, err := s.Get("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, s.Set("a", "1|2|string|eA=="))
		got, err := s.Get("a")
		require.NoError(t, err)
		assert.Equal(t, "1|2|string|eA==", got)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, s.Set("a", "first"))
		require.NoError(t, s.Set("a", "second"))
		got, err := s.Get("a")
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("keys", func(t *testing.T) {
		require.NoError(t, s.Set("b", "x"))
		require.NoError(t, s.Set("c", "y"))
		keys, err := s.Keys()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, keys)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete("b"))
		_, err := s.Get("b")
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := s.Get("c")
		require.NoError(t, err)
		assert.Equal(t, "y", got)
	})

	t.Run("delete missing is a no-op", func(t *testing.T) {
		assert.NoError(t, s.Delete("never-set"))
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, s.Clear())
		keys, err := s.Keys()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}

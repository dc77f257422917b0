package client_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shinyflakes/client"
)

func TestMemoryStorage(t *testing.T) {
	s := client.NewMemoryStorage()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("key", "value"))
	v, ok := s.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	require.NoError(t, s.Remove("key"))
	_, ok = s.Get("key")
	assert.False(t, ok)
}

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")

	s, err := client.NewFileStorage(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("auth_token", "tok-123"))
	require.NoError(t, s.Set("other", "x"))
	require.NoError(t, s.Remove("other"))

	// Reopening reads the flushed file.
	reopened, err := client.NewFileStorage(path)
	require.NoError(t, err)

	v, ok := reopened.Get("auth_token")
	assert.True(t, ok)
	assert.Equal(t, "tok-123", v)

	_, ok = reopened.Get("other")
	assert.False(t, ok)
}

func TestFileStorageMissingFileIsEmpty(t *testing.T) {
	s, err := client.NewFileStorage(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	_, ok := s.Get("anything")
	assert.False(t, ok)
}

package tokencache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	cache := NewFileCache(path)

	require.NoError(t, cache.Store("session-token"))

	token, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, "session-token", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileCacheLoadMissingFile(t *testing.T) {
	cache := NewFileCache(filepath.Join(t.TempDir(), "absent"))

	token, err := cache.Load()
	require.NoError(t, err, "a missing cache file is not an error")
	assert.Empty(t, token)
}

func TestFileCacheClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	cache := NewFileCache(path)

	require.NoError(t, cache.Store("tok"))
	require.NoError(t, cache.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, cache.Clear(), "clearing twice is fine")
}

func TestFileCacheStoreOverwrites(t *testing.T) {
	cache := NewFileCache(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, cache.Store("first"))
	require.NoError(t, cache.Store("second"))

	token, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

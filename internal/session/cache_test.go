package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	identity := &sdk.Identity{ID: "u1", Name: "Alice", Email: "a@example.com", Role: sdk.RoleDoctor}
	require.NoError(t, cache.Save(identity))

	loaded, err := cache.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, identity, loaded)
}

func TestCacheLoadMissingFile(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCacheLoadCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewCache(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, sessionFile), []byte("{not json"), 0600))

	_, err = cache.Load()
	assert.Error(t, err)
}

func TestCacheDelete(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	// Deleting without a file is fine.
	require.NoError(t, cache.Delete())

	require.NoError(t, cache.Save(&sdk.Identity{ID: "u1", Role: sdk.RolePatient}))
	require.NoError(t, cache.Delete())

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCacheFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	dir := t.TempDir()
	cache, err := NewCache(dir)
	require.NoError(t, err)
	require.NoError(t, cache.Save(&sdk.Identity{ID: "u1", Role: sdk.RolePatient}))

	info, err := os.Stat(filepath.Join(dir, sessionFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

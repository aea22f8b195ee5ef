package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnToRoundTrip(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteReturnTo(dir, "/admin/doctors"))

	rc, err := ReadReturnTo(dir)
	require.NoError(t, err)
	require.NotNil(t, rc)
	assert.Equal(t, "/admin/doctors", rc.Screen)
	assert.Equal(t, returnFileVersion, rc.Version)
	assert.False(t, rc.SavedAt.IsZero())
}

func TestReadReturnToMissingFile(t *testing.T) {
	rc, err := ReadReturnTo(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, rc)
}

func TestWriteReturnToRejectsBadScreen(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, WriteReturnTo(dir, ""))
	assert.Error(t, WriteReturnTo(dir, "admin"))
}

func TestWriteReturnToOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteReturnTo(dir, "/patient"))
	require.NoError(t, WriteReturnTo(dir, "/doctor/appointments"))

	rc, err := ReadReturnTo(dir)
	require.NoError(t, err)
	require.NotNil(t, rc)
	assert.Equal(t, "/doctor/appointments", rc.Screen)
}

func TestReadReturnToCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, returnFile), []byte("oops"), 0644))

	_, err := ReadReturnTo(dir)
	assert.Error(t, err)
}

func TestReadReturnToUnsupportedVersion(t *testing.T) {
	dir := t.TempDir()
	payload := []byte(`{"version":"99","screen":"/patient","saved_at":"2026-01-01T00:00:00Z"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, returnFile), payload, 0644))

	_, err := ReadReturnTo(dir)
	assert.Error(t, err)
}

func TestClearReturnTo(t *testing.T) {
	dir := t.TempDir()

	// Clearing without a file is fine.
	require.NoError(t, ClearReturnTo(dir))

	require.NoError(t, WriteReturnTo(dir, "/patient"))
	require.NoError(t, ClearReturnTo(dir))

	rc, err := ReadReturnTo(dir)
	require.NoError(t, err)
	assert.Nil(t, rc)
}

package statefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")

	require.NoError(t, Write(path, doc{Name: "a", Count: 2}))

	var got doc

	found, err := Read(path, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc{Name: "a", Count: 2}, got)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	require.NoError(t, Write(path, doc{Name: "first"}))
	require.NoError(t, Write(path, doc{Name: "second"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadMissing(t *testing.T) {
	var got doc

	found, err := Read(filepath.Join(t.TempDir(), "missing.json"), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	var got doc

	found, err := Read(path, &got)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.True(t, Exists(path))
}

func TestLoadPurgesCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte("\x00\x01garbage"), 0o600))

	var got doc

	found, err := Load(path, &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, Exists(path))
}

func TestRemoveMissing(t *testing.T) {
	assert.NoError(t, Remove(filepath.Join(t.TempDir(), "nope.json")))
}

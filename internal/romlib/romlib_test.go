package romlib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReturnsRegularFilesSorted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.nes"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.nes"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "saves"), 0o755))

	entries, err := List(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.nes", entries[0].Name)
	assert.Equal(t, "b.nes", entries[1].Name)
	assert.Equal(t, filepath.Join(dir, "a.nes"), entries[0].Path)
}

func TestListMissingDirectory(t *testing.T) {
	entries, err := List(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
	assert.Nil(t, entries)
}

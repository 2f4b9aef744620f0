package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const meminfoFixture = `MemTotal:         245760 kB
MemFree:           40960 kB
MemAvailable:     131072 kB
Buffers:            8192 kB
`

func TestGather(t *testing.T) {
	dir := t.TempDir()
	meminfo := filepath.Join(dir, "meminfo")
	info := filepath.Join(dir, "info")
	require.NoError(t, os.WriteFile(meminfo, []byte(meminfoFixture), 0o644))
	require.NoError(t, os.WriteFile(info, []byte("pkg 1.2.3\n"), 0o644))

	got := Gather("Luckfox Pico", meminfo, info)
	assert.Equal(t, int64(245760), got.MemTotalKB)
	assert.Equal(t, int64(131072), got.MemAvailableKB)
	assert.Equal(t, "pkg 1.2.3", got.PackageVersion)

	body := got.Render()
	assert.Contains(t, body, "Device: Luckfox Pico")
	assert.Contains(t, body, "240 MB / 128 MB Available")
}

func TestGatherDegradesWhenSourcesMissing(t *testing.T) {
	dir := t.TempDir()
	got := Gather("Luckfox Pico", filepath.Join(dir, "nope"), filepath.Join(dir, "also-nope"))

	assert.Zero(t, got.MemTotalKB)
	assert.Contains(t, got.PackageVersion, "Error: Cannot open")
	// Rendering still works with placeholder content.
	assert.Contains(t, got.Render(), "Device: Luckfox Pico")
}

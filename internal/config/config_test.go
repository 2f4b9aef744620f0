package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "Luckfox Pico", cfg.DeviceName)
	assert.Equal(t, "/etc/menu_prefs.conf", cfg.PrefsFile)
	assert.Equal(t, 10, cfg.RecentLimit)
	require.Len(t, cfg.Systems, 1)
	assert.Equal(t, "nes", cfg.Systems[0].ID)
	assert.Equal(t, "/oem/nes_game", cfg.Systems[0].RomDir)
	assert.NotEmpty(t, cfg.Commands.ConsoleStart)
	assert.Contains(t, cfg.Keys.Up, "w")
}

func TestNewMergesUserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "picomenu")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	yaml := "deviceName: Test Rig\nrecentLimit: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "Test Rig", cfg.DeviceName)
	assert.Equal(t, 3, cfg.RecentLimit)
	// Untouched values keep their defaults.
	assert.Equal(t, "/etc/menu_prefs.conf", cfg.PrefsFile)
}

func TestNewRejectsInvalidSystem(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "picomenu")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	yaml := "systems:\n  - name: Broken\n    id: broken\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	_, err := New()
	assert.Error(t, err)
}

func TestSystemByID(t *testing.T) {
	cfg := &ConfigSchema{Systems: []System{{ID: "nes"}, {ID: "snes"}}}

	sys, ok := cfg.SystemByID("snes")
	assert.True(t, ok)
	assert.Equal(t, "snes", sys.ID)

	_, ok = cfg.SystemByID("gb")
	assert.False(t, ok)
}

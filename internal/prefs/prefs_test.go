package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu_prefs.conf")
	s := NewStore(path, nil)

	p := s.Load()
	assert.Equal(t, Defaults(), p)

	// The default record must have been persisted.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SHOW_SECONDS=1")
	assert.Contains(t, string(data), "IS_24_HOUR=1")
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu_prefs.conf")
	s := NewStore(path, nil)

	s.Save(Prefs{ShowSeconds: false, Hour24: true})

	// A fresh store simulates a process restart.
	reloaded := NewStore(path, nil).Load()
	assert.False(t, reloaded.ShowSeconds)
	assert.True(t, reloaded.Hour24)
}

func TestToggledValueSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu_prefs.conf")
	s := NewStore(path, nil)

	p := s.Load()
	require.True(t, p.ShowSeconds)

	p.ShowSeconds = false
	s.Save(p)

	got := NewStore(path, nil).Load()
	assert.False(t, got.ShowSeconds, "toggle must persist, not revert to default")
}

func TestLoadIgnoresUnrecognizedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu_prefs.conf")
	content := "# comment\nGARBAGE\nSHOW_SECONDS=0\nWHO_KNOWS=7\nIS_24_HOUR=notanumber\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p := NewStore(path, nil).Load()
	assert.False(t, p.ShowSeconds)
	assert.True(t, p.Hour24, "unparseable value falls back to default")
}

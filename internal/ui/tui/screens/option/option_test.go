package option

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picomenu/picomenu/internal/config"
	"github.com/picomenu/picomenu/internal/launcher"
	"github.com/picomenu/picomenu/internal/ui/tui/focus"
	"github.com/picomenu/picomenu/internal/ui/tui/keymap"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
	"github.com/picomenu/picomenu/internal/ui/tui/theme"
)

func testEnv(t *testing.T) screens.Env {
	t.Helper()
	return screens.Env{
		Config: &config.ConfigSchema{},
		Theme:  theme.Default(),
		Keys:   keymap.FromConfig(config.KeyMap{}),
		Focus:  focus.New(),
		Launch: &launcher.Recorder{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:    time.Now,
	}
}

// drain runs a command tree and collects every message it produces.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestPickAppliesThenCloses(t *testing.T) {
	env := testEnv(t)
	var picked string
	m := New(env, "fmt", "Hour Format", []Choice{
		{ID: "24h", Label: "24 Hour", Pick: func() tea.Cmd {
			picked = "24h"
			return nil
		}},
		{ID: "12h", Label: "12 Hour", Pick: func() tea.Cmd {
			picked = "12h"
			return nil
		}},
	}, "12h")

	require.True(t, m.Focus("24h"))
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msgs := drain(cmd)
	assert.Equal(t, "24h", picked, "pick runs before the screen closes")
	require.Len(t, msgs, 1)
	assert.IsType(t, nav.PopMsg{}, msgs[0])
}

func TestPickCommandsAreForwarded(t *testing.T) {
	env := testEnv(t)
	type appliedMsg struct{}
	m := New(env, "tz", "Timezone", []Choice{
		{ID: "utc", Label: "UTC", Pick: func() tea.Cmd {
			return func() tea.Msg { return appliedMsg{} }
		}},
	}, "")

	require.True(t, m.Focus("utc"))
	msgs := drain(m.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	require.Len(t, msgs, 2)
	assert.Contains(t, msgs, tea.Msg(appliedMsg{}))
	assert.Contains(t, msgs, tea.Msg(nav.PopMsg{}))
}

func TestDefaultFocusIsCurrentValue(t *testing.T) {
	env := testEnv(t)
	m := New(env, "sec", "Show Seconds", []Choice{
		{ID: "on", Label: "On"},
		{ID: "off", Label: "Off"},
	}, "off")

	assert.Equal(t, "off", m.DefaultFocus())
}

func TestBackClosesWithoutPicking(t *testing.T) {
	env := testEnv(t)
	picked := false
	m := New(env, "sec", "Show Seconds", []Choice{
		{ID: "on", Label: "On", Pick: func() tea.Cmd {
			picked = true
			return nil
		}},
	}, "on")

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, nav.PopMsg{}, cmd())
	assert.False(t, picked)
}

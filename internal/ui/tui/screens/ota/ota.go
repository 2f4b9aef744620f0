// Package ota runs the over-the-air update helper while the screen is open
// and stops it on the way out.
package ota

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/ui/tui/components/menulist"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
)

type Model struct {
	env  screens.Env
	list *menulist.Model
}

func New(env screens.Env) *Model {
	m := &Model{env: env}

	entries := []menulist.Entry{
		{ID: "status", Label: "OTA update service running", Static: true},
		{ID: "hint", Label: "Connect from the companion app to upload", Static: true},
		{ID: "back", Label: "Back", Select: func() tea.Cmd {
			return m.stop()
		}},
	}

	m.list = menulist.New(screens.OTAID, "OTA Update", env.Focus, env.Theme, entries)
	return m
}

func (m *Model) stop() tea.Cmd {
	cmd := m.env.Config.Commands.OTAStop
	if err := m.env.Launch.Shell(cmd); err != nil {
		m.env.Logger.Error("ota stop failed", "command", cmd, "error", err)
	}
	return nav.Pop()
}

func (m *Model) ID() string { return screens.OTAID }

// Init starts the update helper. The menu stays on screen, so no display
// handoff is involved.
func (m *Model) Init() tea.Cmd {
	cmd := m.env.Config.Commands.OTAStart
	if err := m.env.Launch.Shell(cmd); err != nil {
		m.env.Logger.Error("ota start failed", "command", cmd, "error", err)
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(k, m.env.Keys.Back) {
		return m.stop()
	}
	return m.list.HandleKey(k, m.env.Keys)
}

func (m *Model) View() string { return m.list.View() }

func (m *Model) Focus(controlID string) bool { return m.list.FocusEntry(controlID) }

func (m *Model) DefaultFocus() string { return "back" }

func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(screens.OTAID) }

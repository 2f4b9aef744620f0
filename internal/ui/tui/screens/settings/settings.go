// Package settings is the settings hub screen.
package settings

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/ui/tui/components/menulist"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/ota"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/timesettings"
)

type Model struct {
	env  screens.Env
	list *menulist.Model
}

func New(env screens.Env) *Model {
	m := &Model{env: env}

	entries := []menulist.Entry{
		{ID: "time", Label: "Clock Settings", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return timesettings.New(env), nil
			}, "time")
		}},
		{ID: "ota", Label: "OTA Update", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return ota.New(env), nil
			}, "ota")
		}},
		{ID: "back", Label: "Back", Select: func() tea.Cmd {
			return nav.Pop()
		}},
	}

	m.list = menulist.New(screens.SettingsID, "Settings", env.Focus, env.Theme, entries)
	return m
}

func (m *Model) ID() string { return screens.SettingsID }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(k, m.env.Keys.Back) {
		return nav.Pop()
	}
	return m.list.HandleKey(k, m.env.Keys)
}

func (m *Model) View() string { return m.list.View() }

func (m *Model) Focus(controlID string) bool { return m.list.FocusEntry(controlID) }

func (m *Model) DefaultFocus() string { return m.list.FirstID() }

func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(screens.SettingsID) }

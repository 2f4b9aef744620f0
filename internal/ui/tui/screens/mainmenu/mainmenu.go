// Package mainmenu is the root screen. It exists for the lifetime of the
// process and is never destroyed.
package mainmenu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/ui/tui/components/menulist"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/about"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/browser"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/confirm"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/console"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/recent"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/settings"
)

type Model struct {
	env  screens.Env
	list *menulist.Model
}

func New(env screens.Env) *Model {
	m := &Model{env: env}

	entries := []menulist.Entry{
		{ID: "start-game", Label: "Start Game", Select: func() tea.Cmd {
			cmd := env.Config.Commands.GameStart
			return func() tea.Msg { return screens.HandoffMsg{Command: cmd} }
		}},
		{ID: "console", Label: "Console", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return console.New(env), nil
			}, "console")
		}},
	}

	for _, sys := range env.Config.Systems {
		sys := sys
		entries = append(entries, menulist.Entry{
			ID:    "system-" + sys.ID,
			Label: sys.Name,
			Select: func() tea.Cmd {
				return nav.Push(func() (nav.Screen, error) {
					return browser.New(env, sys), nil
				}, "system-"+sys.ID)
			},
		})
	}

	entries = append(entries,
		menulist.Entry{ID: "recent", Label: "Recently Played", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return recent.New(env), nil
			}, "recent")
		}},
		menulist.Entry{ID: "settings", Label: "Settings", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return settings.New(env), nil
			}, "settings")
		}},
		menulist.Entry{ID: "about", Label: "About", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return about.New(env), nil
			}, "about")
		}},
		menulist.Entry{ID: "reboot", Label: "Reboot", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return confirm.NewReboot(env), nil
			}, "reboot")
		}},
	)

	m.list = menulist.New(screens.MainMenuID, env.Config.DeviceName, env.Focus, env.Theme, entries)
	return m
}

func (m *Model) ID() string { return screens.MainMenuID }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		return m.list.HandleKey(k, m.env.Keys)
	}
	return nil
}

func (m *Model) View() string { return m.list.View() }

func (m *Model) Focus(controlID string) bool { return m.list.FocusEntry(controlID) }

func (m *Model) DefaultFocus() string { return m.list.FirstID() }

// Destroy is part of the nav.Screen contract; the root screen is never
// closed, so this only runs at process exit.
func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(screens.MainMenuID) }

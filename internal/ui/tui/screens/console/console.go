// Package console hands the display to the standalone console program and
// offers the single way back into the menu.
package console

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
		{ID: "running", Label: "Console running", Static: true},
		{ID: "exit", Label: "Exit Console", Select: func() tea.Cmd {
			return m.exit()
		}},
	}

	m.list = menulist.New(screens.ConsoleID, "Console", env.Focus, env.Theme, entries)
	return m
}

// exit stops the console program and closes the screen.
func (m *Model) exit() tea.Cmd {
	cmd := m.env.Config.Commands.ConsoleStop
	if err := m.env.Launch.Shell(cmd); err != nil {
		m.env.Logger.Error("console stop failed", "command", cmd, "error", err)
	}
	return nav.Pop()
}

func (m *Model) ID() string { return screens.ConsoleID }

// Init requests the display handoff. The console program starts only after
// the blank frame has been flushed.
func (m *Model) Init() tea.Cmd {
	cmd := m.env.Config.Commands.ConsoleStart
	return func() tea.Msg { return screens.HandoffMsg{Command: cmd} }
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(k, m.env.Keys.Back) {
		return m.exit()
	}
	return m.list.HandleKey(k, m.env.Keys)
}

func (m *Model) View() string { return m.list.View() }

func (m *Model) Focus(controlID string) bool { return m.list.FocusEntry(controlID) }

func (m *Model) DefaultFocus() string { return "exit" }

func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(screens.ConsoleID) }

// Package confirm is a two-option yes/no screen for destructive actions.
package confirm

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

// New builds a confirmation screen. confirmCmd runs when the user picks
// Yes, before the screen closes. The safe option comes first so a plain
// select without moving the cursor declines.
func New(env screens.Env, prompt string, confirmCmd string) *Model {
	m := &Model{env: env}

	entries := []menulist.Entry{
		{ID: "prompt", Label: prompt, Static: true},
		{ID: "no", Label: "No", Select: func() tea.Cmd {
			return nav.Pop()
		}},
		{ID: "yes", Label: "Yes", Select: func() tea.Cmd {
			if err := env.Launch.Shell(confirmCmd); err != nil {
				env.Logger.Error("confirm command failed", "command", confirmCmd, "error", err)
			}
			return nav.Pop()
		}},
	}

	m.list = menulist.New(screens.ConfirmID, "Confirm", env.Focus, env.Theme, entries)
	return m
}

// NewReboot builds the reboot confirmation.
func NewReboot(env screens.Env) *Model {
	return New(env, "Reboot the device?", env.Config.Commands.Reboot)
}

func (m *Model) ID() string { return screens.ConfirmID }

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

func (m *Model) DefaultFocus() string { return "no" }

func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(screens.ConfirmID) }

// Package tui is the full-screen menu program: a navigation stack of screens
// under a live clock header and a key hint footer.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/picomenu/picomenu/internal/ui/tui/screens"
)

// StartTUI runs the menu until the user quits from the main screen.
func StartTUI(env screens.Env) error {
	p := tea.NewProgram(NewModel(env), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "running menu")
	}
	return nil
}

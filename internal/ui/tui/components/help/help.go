package help

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/ui/tui/keymap"
	"github.com/picomenu/picomenu/internal/ui/tui/theme"
)

// Model represents the key hint footer
type Model struct {
	help    help.Model
	keys    *keymap.KeyMap
	theme   *theme.Theme
	width   int
	ShowAll bool
}

// New creates a new help model
func New(km *keymap.KeyMap, thm *theme.Theme) Model {
	return Model{
		help:  help.New(),
		keys:  km,
		theme: thm,
		width: 80,
	}
}

// SetWidth sets the width of the help component
func (m *Model) SetWidth(width int) {
	m.width = width
	m.help.Width = width
}

// Toggle switches between the short hint line and the full key listing.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	m.help.ShowAll = m.ShowAll
}

// Update handles updates to the help component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetWidth(size.Width)
	}
	return m, nil
}

// View renders the help component
func (m Model) View() string {
	return m.theme.FooterStyle.Width(m.width).Render(m.help.View(m.keys))
}

// Package option is a generic single-choice picker screen. Picking a choice
// applies it and closes the screen in one step.
package option

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/ui/tui/components/menulist"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
)

// Choice is one pickable value. Pick runs when the choice is selected; the
// screen closes afterwards regardless.
type Choice struct {
	ID    string
	Label string
	Pick  func() tea.Cmd
}

type Model struct {
	env     screens.Env
	id      string
	current string
	list    *menulist.Model
}

// New builds a picker. name distinguishes concurrent pickers in the focus
// group; current is the choice that starts focused.
func New(env screens.Env, name, title string, choices []Choice, current string) *Model {
	m := &Model{env: env, id: "option-" + name, current: current}

	entries := make([]menulist.Entry, 0, len(choices)+1)
	for _, c := range choices {
		c := c
		entries = append(entries, menulist.Entry{
			ID:    c.ID,
			Label: c.Label,
			Select: func() tea.Cmd {
				var applied tea.Cmd
				if c.Pick != nil {
					applied = c.Pick()
				}
				return tea.Batch(applied, nav.Pop())
			},
		})
	}
	entries = append(entries, menulist.Entry{ID: "back", Label: "Back", Select: func() tea.Cmd {
		return nav.Pop()
	}})

	m.list = menulist.New(m.id, title, env.Focus, env.Theme, entries)
	if current != "" {
		m.list.FocusEntry(current)
	}
	return m
}

func (m *Model) ID() string { return m.id }

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

// DefaultFocus starts on the current value so select-without-moving is a
// no-op change.
func (m *Model) DefaultFocus() string {
	if m.current != "" && m.list.FocusEntry(m.current) {
		return m.current
	}
	return m.list.FirstID()
}

func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(m.id) }

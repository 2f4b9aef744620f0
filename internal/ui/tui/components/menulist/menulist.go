// Package menulist is the selectable list widget used by every menu screen.
// Behavior is bound to entries at construction time; labels are display-only
// and never dispatched on.
package menulist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/picomenu/picomenu/internal/ui/tui/focus"
	"github.com/picomenu/picomenu/internal/ui/tui/keymap"
	"github.com/picomenu/picomenu/internal/ui/tui/theme"
)

// Entry is one row of a menu list.
type Entry struct {
	ID     string
	Label  string
	Static bool // non-selectable row, e.g. an error placeholder
	// Select is invoked when the entry is activated.
	Select func() tea.Cmd
}

// Model is a focusable menu list.
type Model struct {
	screenID string
	title    string
	entries  []Entry
	cursor   int
	fm       *focus.Manager
	theme    *theme.Theme
}

// New builds a list and registers its selectable entries with the focus
// group under "<screenID>/<entryID>".
func New(screenID, title string, fm *focus.Manager, thm *theme.Theme, entries []Entry) *Model {
	m := &Model{
		screenID: screenID,
		title:    title,
		entries:  entries,
		cursor:   -1,
		fm:       fm,
		theme:    thm,
	}
	for i, e := range entries {
		if e.Static {
			continue
		}
		if m.cursor < 0 {
			m.cursor = i
		}
		fm.Register(screenID+"/"+e.ID, &entryFocus{list: m, index: i})
	}
	return m
}

// entryFocus adapts one list entry to the focus group.
type entryFocus struct {
	list  *Model
	index int
}

func (f *entryFocus) Focus() {
	f.list.cursor = f.index
	f.list.fm.Track(f.list.screenID + "/" + f.list.entries[f.index].ID)
}

func (f *entryFocus) Blur() {}

func (f *entryFocus) IsFocused() bool {
	return f.list.cursor == f.index
}

// MoveUp moves the cursor to the previous selectable entry, wrapping.
func (m *Model) MoveUp() {
	m.move(-1)
}

// MoveDown moves the cursor to the next selectable entry, wrapping.
func (m *Model) MoveDown() {
	m.move(1)
}

func (m *Model) move(delta int) {
	n := len(m.entries)
	if n == 0 || m.cursor < 0 {
		return
	}
	i := m.cursor
	for range m.entries {
		i = ((i+delta)%n + n) % n
		if !m.entries[i].Static {
			m.cursor = i
			m.fm.Track(m.screenID + "/" + m.entries[i].ID)
			return
		}
	}
}

// Select activates the focused entry.
func (m *Model) Select() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	e := m.entries[m.cursor]
	if e.Static || e.Select == nil {
		return nil
	}
	return e.Select()
}

// FocusEntry moves the cursor to the entry with the given ID, reporting
// whether it exists.
func (m *Model) FocusEntry(id string) bool {
	for i, e := range m.entries {
		if e.ID == id && !e.Static {
			m.cursor = i
			m.fm.Track(m.screenID + "/" + id)
			return true
		}
	}
	return false
}

// FocusedID returns the ID of the focused entry, or "" when nothing is
// selectable.
func (m *Model) FocusedID() string {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return ""
	}
	return m.entries[m.cursor].ID
}

// FirstID returns the ID of the first selectable entry, or "".
func (m *Model) FirstID() string {
	for _, e := range m.entries {
		if !e.Static {
			return e.ID
		}
	}
	return ""
}

// HandleKey applies the shared up/down/select handling.
func (m *Model) HandleKey(msg tea.KeyMsg, keys *keymap.KeyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		m.MoveUp()
	case key.Matches(msg, keys.Down):
		m.MoveDown()
	case key.Matches(msg, keys.Select):
		return m.Select()
	}
	return nil
}

// View renders the list.
func (m *Model) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.theme.TitleStyle.Render(m.title))
		b.WriteString("\n\n")
	}
	for i, e := range m.entries {
		var row string
		switch {
		case e.Static:
			row = m.theme.StaticStyle.Render(e.Label)
		case i == m.cursor:
			row = m.theme.FocusedStyle.Render("> " + e.Label)
		default:
			row = m.theme.ItemStyle.Render("  " + e.Label)
		}
		b.WriteString(row)
		if i < len(m.entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

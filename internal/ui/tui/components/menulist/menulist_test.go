package menulist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picomenu/picomenu/internal/ui/tui/focus"
	"github.com/picomenu/picomenu/internal/ui/tui/theme"
)

func newList(t *testing.T, entries []Entry) (*Model, *focus.Manager) {
	t.Helper()
	fm := focus.New()
	return New("test", "Title", fm, theme.Default(), entries), fm
}

func TestCursorSkipsStaticEntries(t *testing.T) {
	m, _ := newList(t, []Entry{
		{ID: "header", Label: "Games", Static: true},
		{ID: "a", Label: "a.nes"},
		{ID: "b", Label: "b.nes"},
	})

	assert.Equal(t, "a", m.FocusedID(), "cursor starts on first selectable entry")

	m.MoveDown()
	assert.Equal(t, "b", m.FocusedID())
	m.MoveDown()
	assert.Equal(t, "a", m.FocusedID(), "wraps past the end, skipping statics")
	m.MoveUp()
	assert.Equal(t, "b", m.FocusedID())
}

func TestSelectInvokesBoundAction(t *testing.T) {
	var selected string
	m, _ := newList(t, []Entry{
		{ID: "a", Label: "A", Select: func() tea.Cmd {
			selected = "a"
			return nil
		}},
		{ID: "b", Label: "B", Select: func() tea.Cmd {
			selected = "b"
			return nil
		}},
	})

	m.MoveDown()
	m.Select()
	assert.Equal(t, "b", selected)
}

func TestFocusEntryAndManagerTracking(t *testing.T) {
	m, fm := newList(t, []Entry{
		{ID: "a", Label: "A"},
		{ID: "b", Label: "B"},
	})

	require.True(t, m.FocusEntry("b"))
	assert.Equal(t, "test/b", fm.Current())

	assert.False(t, m.FocusEntry("missing"))
	assert.Equal(t, "test/b", fm.Current())

	// Focus restoration through the group reaches the list cursor.
	require.True(t, fm.SetFocus("test/a"))
	assert.Equal(t, "a", m.FocusedID())
}

func TestStaticOnlyListHasNoFocus(t *testing.T) {
	m, fm := newList(t, []Entry{{ID: "err", Label: "Error: Cannot open dir", Static: true}})

	assert.Empty(t, m.FocusedID())
	assert.Empty(t, m.FirstID())
	assert.Zero(t, fm.ScreenControls("test"))
	assert.Nil(t, m.Select())
}

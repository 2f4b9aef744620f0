// Package clocklabel renders the live clock shown in the screen header.
package clocklabel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/clock"
	"github.com/picomenu/picomenu/internal/prefs"
	"github.com/picomenu/picomenu/internal/ui/tui/theme"
)

// TickMsg carries the periodic redraw tick.
type TickMsg time.Time

// Model is the clock label state.
type Model struct {
	prefs prefs.Prefs
	now   time.Time
	theme *theme.Theme
}

func New(thm *theme.Theme, p prefs.Prefs, now time.Time) Model {
	return Model{prefs: p, now: now, theme: thm}
}

// Init starts the 1 s tick driving the clock.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update advances the clock on each tick and schedules the next one.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if t, ok := msg.(TickMsg); ok {
		m.now = time.Time(t)
		return m, tick()
	}
	return m, nil
}

// SetPrefs applies a preference change immediately, without waiting for the
// next tick.
func (m *Model) SetPrefs(p prefs.Prefs) {
	m.prefs = p
}

func (m Model) View() string {
	return m.theme.ClockStyle.Render(clock.Format(m.now, m.prefs))
}

// Package timeset is the manual clock setter. Left and right move between
// the hour field, the minute field and the buttons; up and down spin the
// focused field.
package timeset

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/clock"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
)

// Control order, left to right.
var controls = []string{"hour", "minute", "save", "back"}

type Model struct {
	env    screens.Env
	hour   int
	minute int
	cursor int
}

func New(env screens.Env) *Model {
	now := env.Now()
	m := &Model{env: env, hour: now.Hour(), minute: now.Minute()}
	for i, id := range controls {
		env.Focus.Register(screens.TimeSetID+"/"+id, &control{m: m, index: i})
	}
	return m
}

// control adapts one field or button to the focus group.
type control struct {
	m     *Model
	index int
}

func (c *control) Focus() {
	c.m.cursor = c.index
	c.m.env.Focus.Track(screens.TimeSetID + "/" + controls[c.index])
}

func (c *control) Blur() {}

func (c *control) IsFocused() bool { return c.m.cursor == c.index }

func (m *Model) ID() string { return screens.TimeSetID }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(k, m.env.Keys.Back):
		return nav.Pop()
	case key.Matches(k, m.env.Keys.Left):
		m.move(-1)
	case key.Matches(k, m.env.Keys.Right):
		m.move(1)
	case key.Matches(k, m.env.Keys.Up):
		m.spin(1)
	case key.Matches(k, m.env.Keys.Down):
		m.spin(-1)
	case key.Matches(k, m.env.Keys.Select):
		switch controls[m.cursor] {
		case "save":
			return m.save()
		case "back":
			return nav.Pop()
		}
	}
	return nil
}

func (m *Model) move(delta int) {
	n := len(controls)
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.env.Focus.Track(screens.TimeSetID + "/" + controls[m.cursor])
}

func (m *Model) spin(delta int) {
	switch controls[m.cursor] {
	case "hour":
		m.hour = clock.WrapHour(m.hour, delta)
	case "minute":
		m.minute = clock.WrapMinute(m.minute, delta)
	}
}

// save pushes the chosen time to the system clock and the hardware clock,
// then closes the screen.
func (m *Model) save() tea.Cmd {
	cmd := fmt.Sprintf(m.env.Config.Commands.SetClock, m.hour, m.minute)
	if err := m.env.Launch.Shell(cmd); err != nil {
		m.env.Logger.Error("set clock failed", "command", cmd, "error", err)
	}
	if hw := m.env.Config.Commands.SaveHWClock; hw != "" {
		if err := m.env.Launch.Shell(hw); err != nil {
			m.env.Logger.Error("save hardware clock failed", "command", hw, "error", err)
		}
	}
	return nav.Pop()
}

func (m *Model) View() string {
	thm := m.env.Theme
	part := func(index int, text string) string {
		if m.cursor == index {
			return thm.FocusedStyle.Render(text)
		}
		return thm.ItemStyle.Render(text)
	}

	title := thm.TitleStyle.Render("Set Time")
	fields := fmt.Sprintf("%s : %s",
		part(0, fmt.Sprintf("%02d", m.hour)),
		part(1, fmt.Sprintf("%02d", m.minute)))
	buttons := part(2, "[Save]") + "  " + part(3, "[Back]")
	return title + "\n\n" + fields + "\n\n" + buttons
}

func (m *Model) Focus(controlID string) bool {
	return m.env.Focus.SetFocus(screens.TimeSetID + "/" + controlID)
}

func (m *Model) DefaultFocus() string { return "hour" }

func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(screens.TimeSetID) }

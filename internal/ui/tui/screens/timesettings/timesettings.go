// Package timesettings groups the clock-related settings.
package timesettings

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/ui/tui/components/menulist"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/option"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/timeset"
)

type Model struct {
	env  screens.Env
	list *menulist.Model
}

func New(env screens.Env) *Model {
	m := &Model{env: env}

	entries := []menulist.Entry{
		{ID: "set", Label: "Set Time", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return timeset.New(env), nil
			}, "set")
		}},
		{ID: "seconds", Label: "Show Seconds", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return newSecondsPicker(env), nil
			}, "seconds")
		}},
		{ID: "format", Label: "Hour Format", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return newFormatPicker(env), nil
			}, "format")
		}},
	}
	if len(env.Config.Timezones) > 0 {
		entries = append(entries, menulist.Entry{ID: "timezone", Label: "Timezone", Select: func() tea.Cmd {
			return nav.Push(func() (nav.Screen, error) {
				return newTimezonePicker(env), nil
			}, "timezone")
		}})
	}
	entries = append(entries, menulist.Entry{ID: "back", Label: "Back", Select: func() tea.Cmd {
		return nav.Pop()
	}})

	m.list = menulist.New(screens.TimeSettingsID, "Clock Settings", env.Focus, env.Theme, entries)
	return m
}

// newSecondsPicker toggles whether the header clock shows seconds. The
// preference is persisted before the picker closes.
func newSecondsPicker(env screens.Env) nav.Screen {
	p := env.Prefs.Load()
	apply := func(show bool) func() tea.Cmd {
		return func() tea.Cmd {
			p := env.Prefs.Load()
			p.ShowSeconds = show
			env.Prefs.Save(p)
			return func() tea.Msg { return screens.PrefsChangedMsg{Prefs: p} }
		}
	}
	current := "off"
	if p.ShowSeconds {
		current = "on"
	}
	return option.New(env, "seconds", "Show Seconds", []option.Choice{
		{ID: "on", Label: "On", Pick: apply(true)},
		{ID: "off", Label: "Off", Pick: apply(false)},
	}, current)
}

func newFormatPicker(env screens.Env) nav.Screen {
	p := env.Prefs.Load()
	apply := func(hour24 bool) func() tea.Cmd {
		return func() tea.Cmd {
			p := env.Prefs.Load()
			p.Hour24 = hour24
			env.Prefs.Save(p)
			return func() tea.Msg { return screens.PrefsChangedMsg{Prefs: p} }
		}
	}
	current := "12h"
	if p.Hour24 {
		current = "24h"
	}
	return option.New(env, "format", "Hour Format", []option.Choice{
		{ID: "24h", Label: "24 Hour", Pick: apply(true)},
		{ID: "12h", Label: "12 Hour", Pick: apply(false)},
	}, current)
}

// newTimezonePicker applies the zone through the configured shell command;
// the device has no writable /etc, so the helper script owns the mechanics.
func newTimezonePicker(env screens.Env) nav.Screen {
	choices := make([]option.Choice, 0, len(env.Config.Timezones))
	for _, tz := range env.Config.Timezones {
		tz := tz
		choices = append(choices, option.Choice{
			ID:    tz,
			Label: tz,
			Pick: func() tea.Cmd {
				cmd := fmt.Sprintf(env.Config.Commands.SetTimezone, tz)
				if err := env.Launch.Shell(cmd); err != nil {
					env.Logger.Error("set timezone failed", "command", cmd, "error", err)
				}
				return nil
			},
		})
	}
	return option.New(env, "timezone", "Timezone", choices, "")
}

func (m *Model) ID() string { return screens.TimeSettingsID }

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

func (m *Model) DefaultFocus() string { return m.list.FirstID() }

func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(screens.TimeSettingsID) }

// Package browser lists the ROMs of one system and launches the selection.
package browser

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/config"
	"github.com/picomenu/picomenu/internal/domain"
	"github.com/picomenu/picomenu/internal/launcher"
	"github.com/picomenu/picomenu/internal/romlib"
	"github.com/picomenu/picomenu/internal/ui/tui/components/menulist"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
)

type Model struct {
	env  screens.Env
	sys  config.System
	id   string
	list *menulist.Model
}

// New reads the system's ROM directory at open time. An unreadable directory
// still yields a working screen, with the error shown in place of the list.
func New(env screens.Env, sys config.System) *Model {
	m := &Model{env: env, sys: sys, id: screens.BrowserPrefix + sys.ID}

	entries := []menulist.Entry{
		{ID: "back", Label: "Back", Select: func() tea.Cmd {
			return nav.Pop()
		}},
	}

	roms, err := romlib.List(sys.RomDir)
	if err != nil {
		env.Logger.Warn("rom directory unreadable", "system", sys.ID, "dir", sys.RomDir, "error", err)
		entries = append(entries, menulist.Entry{
			ID:     "error",
			Label:  fmt.Sprintf("Error: Cannot open %s", sys.RomDir),
			Static: true,
		})
	}
	for i, rom := range roms {
		rom := rom
		entries = append(entries, menulist.Entry{
			ID:    fmt.Sprintf("rom-%d", i),
			Label: rom.Name,
			Select: func() tea.Cmd {
				return m.launch(rom)
			},
		})
	}

	m.list = menulist.New(m.id, sys.Name, env.Focus, env.Theme, entries)
	return m
}

// launch records the pick in history and requests the display handoff. The
// emulator command itself runs only after the blank frame is on screen.
func (m *Model) launch(rom romlib.Entry) tea.Cmd {
	if m.env.History != nil {
		rec := &domain.LaunchRecord{System: m.sys.ID, Name: rom.Name, Path: rom.Path}
		if err := m.env.History.Record(context.Background(), rec); err != nil {
			m.env.Logger.Warn("record launch failed", "rom", rom.Path, "error", err)
		}
	}
	cmd := fmt.Sprintf(m.sys.LaunchCommand, launcher.ShellQuote(rom.Path))
	return func() tea.Msg { return screens.HandoffMsg{Command: cmd} }
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

func (m *Model) DefaultFocus() string { return m.list.FirstID() }

func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(m.id) }

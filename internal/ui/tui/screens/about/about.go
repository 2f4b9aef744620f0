// Package about shows the device and firmware summary.
package about

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/sysinfo"
	"github.com/picomenu/picomenu/internal/ui/tui/components/menulist"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
)

type Model struct {
	env  screens.Env
	list *menulist.Model
}

// New gathers system info once, at open time. The screen is static after
// that; closing and reopening refreshes the numbers.
func New(env screens.Env) *Model {
	m := &Model{env: env}

	info := sysinfo.Gather(env.Config.DeviceName, env.Config.MeminfoFile, env.Config.InfoFile)

	entries := []menulist.Entry{}
	for i, line := range strings.Split(info.Render(), "\n") {
		entries = append(entries, menulist.Entry{
			ID:     "info-" + strconv.Itoa(i),
			Label:  line,
			Static: true,
		})
	}
	entries = append(entries, menulist.Entry{ID: "back", Label: "Back", Select: func() tea.Cmd {
		return nav.Pop()
	}})

	m.list = menulist.New(screens.AboutID, "About", env.Focus, env.Theme, entries)
	return m
}

func (m *Model) ID() string { return screens.AboutID }

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

func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(screens.AboutID) }

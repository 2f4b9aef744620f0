// Package recent lists the most recently launched ROMs across all systems.
package recent

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/picomenu/picomenu/internal/domain"
	"github.com/picomenu/picomenu/internal/launcher"
	"github.com/picomenu/picomenu/internal/ui/tui/components/menulist"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
)

// errNoDatabase marks the degraded mode where the menu runs without a
// history database at all.
var errNoDatabase = errors.New("history database unavailable")

type Model struct {
	env  screens.Env
	list *menulist.Model
}

// New queries the launch history at open time. A record whose system is no
// longer configured is shown but not launchable.
func New(env screens.Env) *Model {
	m := &Model{env: env}

	entries := []menulist.Entry{
		{ID: "back", Label: "Back", Select: func() tea.Cmd {
			return nav.Pop()
		}},
	}

	// History is nil when the database failed to open at startup; the screen
	// still opens with a placeholder and a working Back entry.
	var records []domain.LaunchRecord
	err := errNoDatabase
	if env.History != nil {
		records, err = env.History.Recent(context.Background(), env.Config.RecentLimit)
	}
	switch {
	case domain.IsNoHistoryError(err):
		entries = append(entries, menulist.Entry{ID: "empty", Label: "Nothing played yet", Static: true})
	case err != nil:
		env.Logger.Warn("history unavailable", "error", err)
		entries = append(entries, menulist.Entry{ID: "error", Label: "Error: Cannot read history", Static: true})
	default:
		for i, rec := range records {
			rec := rec
			sys, ok := env.Config.SystemByID(rec.System)
			if !ok {
				entries = append(entries, menulist.Entry{
					ID:     fmt.Sprintf("rec-%d", i),
					Label:  rec.Name + " (unavailable)",
					Static: true,
				})
				continue
			}
			entries = append(entries, menulist.Entry{
				ID:    fmt.Sprintf("rec-%d", i),
				Label: rec.Name,
				Select: func() tea.Cmd {
					return m.relaunch(sys.LaunchCommand, rec)
				},
			})
		}
	}

	m.list = menulist.New(screens.RecentID, "Recently Played", env.Focus, env.Theme, entries)
	return m
}

func (m *Model) relaunch(launchCommand string, rec domain.LaunchRecord) tea.Cmd {
	fresh := &domain.LaunchRecord{System: rec.System, Name: rec.Name, Path: rec.Path}
	if err := m.env.History.Record(context.Background(), fresh); err != nil {
		m.env.Logger.Warn("record launch failed", "rom", rec.Path, "error", err)
	}
	cmd := fmt.Sprintf(launchCommand, launcher.ShellQuote(rec.Path))
	return func() tea.Msg { return screens.HandoffMsg{Command: cmd} }
}

func (m *Model) ID() string { return screens.RecentID }

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

func (m *Model) Destroy() { m.env.Focus.UnregisterScreen(screens.RecentID) }

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/picomenu/picomenu/internal/ui/tui/components/clocklabel"
	"github.com/picomenu/picomenu/internal/ui/tui/components/help"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
	"github.com/picomenu/picomenu/internal/ui/tui/screens/mainmenu"
)

// handoffDelay is how long the blank frame is left on screen before the
// external program is started, long enough for one display refresh.
const handoffDelay = 16 * time.Millisecond

// handoffFiredMsg fires after the blank frame has been on screen for a full
// refresh; only now may the external program be started.
type handoffFiredMsg struct {
	command string
}

// Model is the top-level program model. It owns the navigation stack and the
// chrome around the active screen, and routes every message.
type Model struct {
	env   screens.Env
	stack *nav.Stack
	clock clocklabel.Model
	help  help.Model
	blank bool
	width int
}

func NewModel(env screens.Env) *Model {
	return &Model{
		env:   env,
		stack: nav.NewStack(mainmenu.New(env), env.Logger),
		clock: clocklabel.New(env.Theme, env.Prefs.Load(), env.Now()),
		help:  help.New(env.Keys, env.Theme),
		width: 80,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.clock.Init(), m.stack.Active().Init())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.PushMsg:
		cmd, err := m.stack.OpenChild(msg.Factory, msg.ReturnFocus)
		if err != nil {
			m.env.Logger.Error("screen construction failed", "error", err)
			return m, tea.Quit
		}
		return m, cmd

	case nav.PopMsg:
		m.stack.CloseActive()
		return m, nil

	case screens.HandoffMsg:
		m.blank = true
		command := msg.Command
		return m, tea.Tick(handoffDelay, func(time.Time) tea.Msg {
			return handoffFiredMsg{command: command}
		})

	case handoffFiredMsg:
		m.blank = false
		if err := m.env.Launch.Shell(msg.command); err != nil {
			m.env.Logger.Error("handoff command failed", "command", msg.command, "error", err)
		}
		return m, nil

	case screens.PrefsChangedMsg:
		m.clock.SetPrefs(msg.Prefs)
		return m, nil

	case clocklabel.TickMsg:
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.env.Keys.Quit):
			// Quitting is only meaningful from the main menu; deeper screens
			// treat it as any other key.
			if m.stack.Depth() == 1 {
				return m, tea.Quit
			}
		case key.Matches(msg, m.env.Keys.Help):
			m.help.Toggle()
			return m, nil
		}
		return m, m.stack.Active().Update(msg)
	}

	return m, m.stack.Active().Update(msg)
}

func (m *Model) View() string {
	if m.blank {
		return ""
	}
	page := m.clock.View() + "\n\n" +
		m.stack.Active().View() + "\n\n" +
		m.help.View()
	return m.env.Theme.ScreenStyle.Width(m.width).Render(page)
}

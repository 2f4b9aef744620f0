// Package nav owns the screen navigation contract: screens form a strict
// stack, exactly one screen is active at a time, and closing a screen always
// restores its immediate parent with focus on a designated return control.
package nav

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one full-screen or modal navigational unit.
type Screen interface {
	// ID is the stable screen identifier, also the prefix of its control IDs
	// in the focus group.
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	// Focus re-targets input to one of the screen's controls. It reports
	// whether the control exists.
	Focus(controlID string) bool
	// DefaultFocus is the control focused when the screen becomes active.
	DefaultFocus() string
	// Destroy releases the screen's controls from the focus group. It is
	// called exactly once, when the screen is closed.
	Destroy()
}

// Factory constructs a child screen. A factory may depend on external
// resources but must still produce a valid, closable screen when they are
// unavailable; an error return is a programming error and treated as fatal
// by the caller.
type Factory func() (Screen, error)

// PushMsg requests that a child screen be opened over the active one.
type PushMsg struct {
	Factory Factory
	// ReturnFocus is the control on the currently active screen that regains
	// focus when the child closes. Empty means the screen's default control.
	ReturnFocus string
}

// PopMsg requests that the active screen be closed.
type PopMsg struct{}

// Push returns a command that opens a child screen.
func Push(factory Factory, returnFocus string) tea.Cmd {
	return func() tea.Msg {
		return PushMsg{Factory: factory, ReturnFocus: returnFocus}
	}
}

// Pop returns a command that closes the active screen.
func Pop() tea.Cmd {
	return func() tea.Msg {
		return PopMsg{}
	}
}

type frame struct {
	screen Screen
	// returnFocus is recorded when a child is opened over this screen.
	returnFocus string
}

// Stack is the navigation stack. The bottom frame is the root screen, which
// is never popped for the lifetime of the process.
type Stack struct {
	frames []frame
	logger *slog.Logger
}

// NewStack creates a stack with the given root screen and focuses the root's
// default control.
func NewStack(root Screen, logger *slog.Logger) *Stack {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Stack{logger: logger}
	s.frames = append(s.frames, frame{screen: root})
	s.focusScreen(root, root.DefaultFocus())
	return s
}

// Active returns the single active screen: the top of the stack.
func (s *Stack) Active() Screen {
	return s.frames[len(s.frames)-1].screen
}

// Depth returns the number of screens on the stack.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// OpenChild hides the active screen behind a new child built by factory. The
// parent's state stays intact on the stack; returnFocus names the parent
// control to restore when the child closes.
func (s *Stack) OpenChild(factory Factory, returnFocus string) (tea.Cmd, error) {
	child, err := factory()
	if err != nil {
		return nil, err
	}

	top := &s.frames[len(s.frames)-1]
	if returnFocus == "" {
		returnFocus = top.screen.DefaultFocus()
	}
	top.returnFocus = returnFocus

	s.frames = append(s.frames, frame{screen: child})
	s.focusScreen(child, child.DefaultFocus())
	return child.Init(), nil
}

// CloseActive destroys the active screen and restores its parent, focusing
// the parent's designated return control. Closing the root is a no-op.
func (s *Stack) CloseActive() {
	if len(s.frames) == 1 {
		return
	}

	closing := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	closing.screen.Destroy()

	parent := &s.frames[len(s.frames)-1]
	s.focusScreen(parent.screen, parent.returnFocus)
	parent.returnFocus = ""
}

// focusScreen targets controlID on the screen, degrading to the screen's
// default control and finally to the bare screen when controls are missing.
// A missing return control is a recoverable UI inconsistency, never fatal.
func (s *Stack) focusScreen(scr Screen, controlID string) {
	if controlID != "" && scr.Focus(controlID) {
		return
	}
	if def := scr.DefaultFocus(); def != "" && def != controlID && scr.Focus(def) {
		s.logger.Warn("return control missing, falling back to default",
			"screen", scr.ID(), "control", controlID)
		return
	}
	s.logger.Warn("no focusable control on screen", "screen", scr.ID())
}

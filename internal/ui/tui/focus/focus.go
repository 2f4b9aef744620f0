package focus

import "strings"

// Focusable interface for controls that can be focused
type Focusable interface {
	Focus()
	Blur()
	IsFocused() bool
}

// Manager handles focus state across the application. Controls are keyed as
// "<screen>/<control>" so a whole screen's membership can be dropped when the
// screen is destroyed.
type Manager struct {
	components   map[string]Focusable
	currentFocus string
}

// New creates a new focus manager
func New() *Manager {
	return &Manager{
		components: make(map[string]Focusable),
	}
}

// Register adds a control to the focus manager
func (m *Manager) Register(id string, component Focusable) {
	m.components[id] = component
}

// UnregisterScreen removes every control belonging to the given screen.
func (m *Manager) UnregisterScreen(screenID string) {
	prefix := screenID + "/"
	for id := range m.components {
		if strings.HasPrefix(id, prefix) {
			delete(m.components, id)
		}
	}
	if strings.HasPrefix(m.currentFocus, prefix) {
		m.currentFocus = ""
	}
}

// SetFocus focuses a specific control. It reports whether the control was
// found; callers degrade to a coarser target when it was not.
func (m *Manager) SetFocus(id string) bool {
	comp, exists := m.components[id]
	if !exists {
		return false
	}

	if m.currentFocus != "" {
		if cur, ok := m.components[m.currentFocus]; ok {
			cur.Blur()
		}
	}

	comp.Focus()
	m.currentFocus = id
	return true
}

// Track records a focus change performed by the control itself, without
// re-invoking it. Unknown IDs are ignored.
func (m *Manager) Track(id string) {
	if _, ok := m.components[id]; ok {
		m.currentFocus = id
	}
}

// BlurAll blurs all controls
func (m *Manager) BlurAll() {
	for _, comp := range m.components {
		comp.Blur()
	}
	m.currentFocus = ""
}

// Current returns the ID of the currently focused control
func (m *Manager) Current() string {
	return m.currentFocus
}

// Has reports whether a control is registered
func (m *Manager) Has(id string) bool {
	_, ok := m.components[id]
	return ok
}

// ScreenControls returns the number of controls registered for a screen.
func (m *Manager) ScreenControls(screenID string) int {
	prefix := screenID + "/"
	n := 0
	for id := range m.components {
		if strings.HasPrefix(id, prefix) {
			n++
		}
	}
	return n
}

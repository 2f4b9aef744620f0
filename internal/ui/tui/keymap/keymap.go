package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/picomenu/picomenu/internal/config"
)

// KeyMap holds the logical navigation bindings shared by every screen. The
// physical keys come from configuration so the device's input mapping (WASD
// on the handheld keypad) stays an operational concern.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// FromConfig builds the keymap from the configured key names.
func FromConfig(keys config.KeyMap) *KeyMap {
	return &KeyMap{
		Up:     binding(keys.Up, "up", "up"),
		Down:   binding(keys.Down, "down", "down"),
		Left:   binding(keys.Left, "left", "left"),
		Right:  binding(keys.Right, "right", "right"),
		Select: binding(keys.Select, "enter", "select"),
		Back:   binding(keys.Back, "esc", "back"),
		Quit:   binding(keys.Quit, "ctrl+c", "quit"),
		Help:   binding(keys.Help, "?", "help"),
	}
}

func binding(keys []string, fallback, help string) key.Binding {
	if len(keys) == 0 {
		keys = []string{fallback}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], help),
	)
}

// ShortHelp implements help.KeyMap for the footer hint line.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp implements help.KeyMap for the expanded help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Back},
		{k.Help, k.Quit},
	}
}

package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the semantic colors and styles for the menu shell. The
// palette matches the device firmware's dark scheme.
type Theme struct {
	// Colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Control    lipgloss.Color
	Focused    lipgloss.Color
	Text       lipgloss.Color
	Subtle     lipgloss.Color
	Error      lipgloss.Color

	// Styles
	ScreenStyle  lipgloss.Style
	ListStyle    lipgloss.Style
	ItemStyle    lipgloss.Style
	FocusedStyle lipgloss.Style
	StaticStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	ClockStyle   lipgloss.Style
	FooterStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
}

// Default creates the default dark theme
func Default() *Theme {
	background := lipgloss.Color("#1e1e1e")
	surface := lipgloss.Color("#2d2d2d")
	control := lipgloss.Color("#404040")
	focused := lipgloss.Color("#5070a0")
	text := lipgloss.Color("#e0e0e0")
	subtle := lipgloss.Color("#808080")
	errColor := lipgloss.Color("#ff4136")

	return &Theme{
		Background: background,
		Surface:    surface,
		Control:    control,
		Focused:    focused,
		Text:       text,
		Subtle:     subtle,
		Error:      errColor,

		ScreenStyle: lipgloss.NewStyle().
			Padding(1, 2),

		ListStyle: lipgloss.NewStyle().
			Background(surface).
			Padding(1, 2),

		ItemStyle: lipgloss.NewStyle().
			Foreground(text).
			Background(control).
			Padding(0, 1),

		FocusedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(focused).
			Padding(0, 1),

		StaticStyle: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),

		TitleStyle: lipgloss.NewStyle().
			Foreground(text).
			Bold(true).
			Padding(0, 1),

		ClockStyle: lipgloss.NewStyle().
			Foreground(text).
			Bold(true),

		FooterStyle: lipgloss.NewStyle().
			Foreground(subtle),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(errColor).
			Padding(0, 1),
	}
}

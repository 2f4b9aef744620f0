// Package screens defines the environment and messages shared by the leaf
// screens. Every screen-to-screen movement goes through the nav package; no
// screen manipulates another screen directly.
package screens

import (
	"log/slog"
	"time"

	"github.com/picomenu/picomenu/internal/config"
	"github.com/picomenu/picomenu/internal/launcher"
	"github.com/picomenu/picomenu/internal/prefs"
	"github.com/picomenu/picomenu/internal/repository"
	"github.com/picomenu/picomenu/internal/ui/tui/focus"
	"github.com/picomenu/picomenu/internal/ui/tui/keymap"
	"github.com/picomenu/picomenu/internal/ui/tui/theme"
)

// Screen identifiers, also the prefixes of control IDs in the focus group.
const (
	MainMenuID     = "mainmenu"
	AboutID        = "about"
	ConfirmID      = "confirm"
	ConsoleID      = "console"
	SettingsID     = "settings"
	TimeSettingsID = "timesettings"
	TimeSetID      = "timeset"
	OTAID          = "ota"
	RecentID       = "recent"
	// Browser screens use "browser-<system>".
	BrowserPrefix = "browser-"
)

// Env carries the shared collaborators every screen needs.
type Env struct {
	Config  *config.ConfigSchema
	Theme   *theme.Theme
	Keys    *keymap.KeyMap
	Focus   *focus.Manager
	Prefs   *prefs.Store
	Launch  launcher.Launcher
	History repository.HistoryRepository
	Logger  *slog.Logger
	Now     func() time.Time
}

// HandoffMsg asks the root model to paint one blank frame, wait for it to be
// flushed to the display, and only then run the command. The ordering is the
// contract: the frame must be visibly committed before control is ceded.
type HandoffMsg struct {
	Command string
}

// PrefsChangedMsg announces a persisted preference change so the clock label
// re-renders immediately.
type PrefsChangedMsg struct {
	Prefs prefs.Prefs
}

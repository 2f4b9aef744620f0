package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/picomenu/picomenu/internal/appState"
	"github.com/picomenu/picomenu/internal/config"
	"github.com/picomenu/picomenu/internal/launcher"
	"github.com/picomenu/picomenu/internal/prefs"
	"github.com/picomenu/picomenu/internal/repository/sqlite"
	"github.com/picomenu/picomenu/internal/ui/cli/configcmd"
	"github.com/picomenu/picomenu/internal/ui/cli/history"
	"github.com/picomenu/picomenu/internal/ui/tui"
	"github.com/picomenu/picomenu/internal/ui/tui/focus"
	"github.com/picomenu/picomenu/internal/ui/tui/keymap"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
	"github.com/picomenu/picomenu/internal/ui/tui/theme"
)

var (
	logLevel  string
	logFile   string
	prefsFile string
	dbPath    string
)

var rootCmd = &cobra.Command{
	Use:               "picomenu",
	Short:             "Menu shell for the handheld",
	Long:              `The boot menu: browse ROMs, launch the console, adjust the clock.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu()
	},
}

// runMenu wires the shared collaborators and hands control to the TUI.
func runMenu() error {
	app := appState.Get()
	cfg := app.Config
	logger := app.Logger

	env := screens.Env{
		Config: cfg,
		Theme:  theme.Default(),
		Keys:   keymap.FromConfig(cfg.Keys),
		Focus:  focus.New(),
		Prefs:  prefs.NewStore(cfg.PrefsFile, logger),
		Launch: launcher.NewExecLauncher(logger),
		Logger: logger,
		Now:    time.Now,
	}

	// A broken history database must not keep the menu from booting.
	repo, err := sqlite.Initialize(cfg.DBPath)
	if err != nil {
		logger.Warn("launch history unavailable", "path", cfg.DBPath, "error", err)
	} else {
		env.History = repo
	}

	return tui.StartTUI(env)
}

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (defaults to stderr)")
	rootCmd.PersistentFlags().StringVar(&prefsFile, "prefs-file", "", "Preference file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Launch history database path")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		overrides := &config.RuntimeOverrides{}
		if logLevel != "" {
			overrides.LogLevel = &logLevel
		}
		if logFile != "" {
			overrides.LogFile = &logFile
		}
		if prefsFile != "" {
			overrides.PrefsFile = &prefsFile
		}
		if dbPath != "" {
			overrides.DBPath = &dbPath
		}
		return appState.Initialize(overrides)
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return appState.Cleanup()
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		configcmd.ConfigCmd,
		history.HistoryCmd,
	)
}

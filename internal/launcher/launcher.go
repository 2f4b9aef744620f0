// Package launcher is the process-launch surface: everything the menu does to
// the outside world (starting services, launching emulators, setting the
// clock, rebooting) goes through the Launcher interface so tests can assert
// invocations without touching the OS.
package launcher

import (
	"log/slog"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// ShellQuote wraps s in single quotes for safe interpolation into a shell
// command line.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Launcher starts external programs fire-and-forget: no exit status is
// observed and no completion is awaited.
type Launcher interface {
	// Start launches a program directly.
	Start(name string, args ...string) error
	// Shell runs a command line through the shell, matching the init-script
	// style invocations on the device.
	Shell(cmdline string) error
}

// ExecLauncher is the production Launcher backed by os/exec.
type ExecLauncher struct {
	logger *slog.Logger
}

func NewExecLauncher(logger *slog.Logger) *ExecLauncher {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecLauncher{logger: logger}
}

func (l *ExecLauncher) Start(name string, args ...string) error {
	l.logger.Info("launching", "command", name, "args", args)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "start %s", name)
	}
	// Reap the child when it exits; the status itself is not our concern.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (l *ExecLauncher) Shell(cmdline string) error {
	return l.Start("sh", "-c", cmdline)
}

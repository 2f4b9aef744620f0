package prefs

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Preference file keys. The on-disk format is one KEY=INTEGER pair per
// line; unrecognized lines are ignored so the file survives hand edits.
const (
	keyShowSeconds = "SHOW_SECONDS"
	key24Hour      = "IS_24_HOUR"
)

// Prefs holds the user-adjustable display preferences.
type Prefs struct {
	ShowSeconds bool
	Hour24      bool
}

// Defaults returns the preference values used when no persisted record exists.
func Defaults() Prefs {
	return Prefs{ShowSeconds: true, Hour24: true}
}

// Store reads and writes the preference file.
type Store struct {
	path   string
	logger *slog.Logger
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Load reads preferences from disk. If the file does not exist, the defaults
// are persisted and returned. Load never fails the caller: any read problem
// degrades to the default values.
func (s *Store) Load() Prefs {
	p := Defaults()

	f, err := os.Open(s.path)
	if err != nil {
		s.logger.Warn("preferences file not found, creating with defaults", "path", s.path)
		s.Save(p)
		return p
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		switch strings.TrimSpace(key) {
		case keyShowSeconds:
			p.ShowSeconds = n == 1
		case key24Hour:
			p.Hour24 = n == 1
		}
	}
	if err := scanner.Err(); err != nil {
		s.logger.Warn("error reading preferences, using defaults", "path", s.path, "error", err)
		return Defaults()
	}

	s.logger.Debug("preferences loaded", "showSeconds", p.ShowSeconds, "hour24", p.Hour24)
	return p
}

// Save writes preferences to disk. Failures are logged, not returned: a
// broken preference file must never block the UI action that triggered the
// save.
func (s *Store) Save(p Prefs) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s=%d\n", keyShowSeconds, boolToInt(p.ShowSeconds))
	fmt.Fprintf(&b, "%s=%d\n", key24Hour, boolToInt(p.Hour24))

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		s.logger.Error("failed to save preferences", "path", s.path, "error", err)
		return
	}
	s.logger.Debug("preferences saved")
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Package romlib enumerates ROM files for the browser screens.
package romlib

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// Entry is one launchable ROM file.
type Entry struct {
	Name string // file name, used as the menu label
	Path string // absolute path handed to the launch script
}

// List returns the regular files in dir, sorted by name. Directories and
// special files are skipped. A missing or unreadable directory returns an
// error the caller renders as an in-UI placeholder; the screen itself must
// still open.
func List(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read rom directory %s", dir)
	}

	var entries []Entry
	for _, d := range dirents {
		if !d.Type().IsRegular() {
			continue
		}
		entries = append(entries, Entry{
			Name: d.Name(),
			Path: filepath.Join(dir, d.Name()),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

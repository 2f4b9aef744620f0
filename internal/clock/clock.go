// Package clock holds the time formatting and adjustment logic shared by the
// clock label and the time setter screen.
package clock

import (
	"time"

	"github.com/picomenu/picomenu/internal/prefs"
)

// Format renders t according to the display preferences: 24-hour vs 12-hour
// with AM/PM, with or without seconds.
func Format(t time.Time, p prefs.Prefs) string {
	var layout string
	switch {
	case p.Hour24 && p.ShowSeconds:
		layout = "15:04:05"
	case p.Hour24:
		layout = "15:04"
	case p.ShowSeconds:
		layout = "03:04:05 PM"
	default:
		layout = "03:04 PM"
	}
	return t.Format(layout)
}

// WrapHour adds delta to an hour value, wrapping within [0, 24).
func WrapHour(h, delta int) int {
	return ((h+delta)%24 + 24) % 24
}

// WrapMinute adds delta to a minute value, wrapping within [0, 60).
func WrapMinute(m, delta int) int {
	return ((m+delta)%60 + 60) % 60
}

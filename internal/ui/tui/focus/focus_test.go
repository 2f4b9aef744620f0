package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeControl struct {
	focused bool
}

func (f *fakeControl) Focus()          { f.focused = true }
func (f *fakeControl) Blur()           { f.focused = false }
func (f *fakeControl) IsFocused() bool { return f.focused }

func TestSetFocusBlursPrevious(t *testing.T) {
	m := New()
	a := &fakeControl{}
	b := &fakeControl{}
	m.Register("menu/a", a)
	m.Register("menu/b", b)

	assert.True(t, m.SetFocus("menu/a"))
	assert.True(t, a.focused)

	assert.True(t, m.SetFocus("menu/b"))
	assert.False(t, a.focused)
	assert.True(t, b.focused)
	assert.Equal(t, "menu/b", m.Current())
}

func TestSetFocusMissingControl(t *testing.T) {
	m := New()
	m.Register("menu/a", &fakeControl{})
	assert.True(t, m.SetFocus("menu/a"))

	// A missing target is reported, not fatal, and focus is unchanged.
	assert.False(t, m.SetFocus("menu/gone"))
	assert.Equal(t, "menu/a", m.Current())
}

func TestUnregisterScreenDropsMembership(t *testing.T) {
	m := New()
	m.Register("parent/x", &fakeControl{})
	m.Register("child/a", &fakeControl{})
	m.Register("child/b", &fakeControl{})
	m.SetFocus("child/a")

	m.UnregisterScreen("child")

	assert.Zero(t, m.ScreenControls("child"))
	assert.Equal(t, 1, m.ScreenControls("parent"))
	assert.Empty(t, m.Current(), "focus on a destroyed control is cleared")
	assert.True(t, m.Has("parent/x"))
	assert.False(t, m.Has("child/a"))
}

func TestTrackOnlyRecordsKnownControls(t *testing.T) {
	m := New()
	m.Register("menu/a", &fakeControl{})

	m.Track("menu/a")
	assert.Equal(t, "menu/a", m.Current())

	m.Track("menu/unknown")
	assert.Equal(t, "menu/a", m.Current())
}

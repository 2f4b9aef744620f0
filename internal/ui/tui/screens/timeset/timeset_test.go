package timeset

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picomenu/picomenu/internal/config"
	"github.com/picomenu/picomenu/internal/launcher"
	"github.com/picomenu/picomenu/internal/ui/tui/focus"
	"github.com/picomenu/picomenu/internal/ui/tui/keymap"
	"github.com/picomenu/picomenu/internal/ui/tui/nav"
	"github.com/picomenu/picomenu/internal/ui/tui/screens"
	"github.com/picomenu/picomenu/internal/ui/tui/theme"
)

func testEnv(t *testing.T) (screens.Env, *launcher.Recorder) {
	t.Helper()
	rec := &launcher.Recorder{}
	return screens.Env{
		Config: &config.ConfigSchema{
			Commands: config.Commands{
				SetClock:    `date -s "%02d:%02d:00"`,
				SaveHWClock: "hwclock -w",
			},
		},
		Theme:  theme.Default(),
		Keys:   keymap.FromConfig(config.KeyMap{}),
		Focus:  focus.New(),
		Launch: rec,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now: func() time.Time {
			return time.Date(2024, 6, 1, 23, 59, 30, 0, time.UTC)
		},
	}, rec
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestStartsAtCurrentTime(t *testing.T) {
	env, _ := testEnv(t)
	m := New(env)
	assert.Equal(t, 23, m.hour)
	assert.Equal(t, 59, m.minute)
	assert.Equal(t, "hour", m.DefaultFocus())
}

func TestSpinWrapsFields(t *testing.T) {
	env, _ := testEnv(t)
	m := New(env)
	require.True(t, m.Focus("hour"))

	press(m, tea.KeyUp)
	assert.Equal(t, 0, m.hour, "hour wraps 23 to 0")
	press(m, tea.KeyDown)
	assert.Equal(t, 23, m.hour)

	press(m, tea.KeyRight)
	press(m, tea.KeyUp)
	assert.Equal(t, 0, m.minute, "minute wraps 59 to 0")
}

func TestSpinOnButtonsIsIgnored(t *testing.T) {
	env, _ := testEnv(t)
	m := New(env)
	require.True(t, m.Focus("save"))

	press(m, tea.KeyUp)
	press(m, tea.KeyDown)
	assert.Equal(t, 23, m.hour)
	assert.Equal(t, 59, m.minute)
}

func TestSaveSetsSystemAndHardwareClockThenCloses(t *testing.T) {
	env, rec := testEnv(t)
	m := New(env)
	require.True(t, m.Focus("hour"))

	press(m, tea.KeyDown) // 22
	press(m, tea.KeyRight)
	press(m, tea.KeyUp) // minute wraps to 0
	require.True(t, m.Focus("save"))

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, nav.PopMsg{}, cmd())

	require.Equal(t, []string{`date -s "22:00:00"`, "hwclock -w"}, rec.Shells())
}

func TestBackDiscardsWithoutRunningCommands(t *testing.T) {
	env, rec := testEnv(t)
	m := New(env)
	require.True(t, m.Focus("back"))

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, nav.PopMsg{}, cmd())
	assert.Empty(t, rec.Calls)
}

func TestHorizontalMovementWraps(t *testing.T) {
	env, _ := testEnv(t)
	m := New(env)

	press(m, tea.KeyLeft)
	assert.Equal(t, "timeset/back", env.Focus.Current())
	press(m, tea.KeyRight)
	assert.Equal(t, "timeset/hour", env.Focus.Current())
}

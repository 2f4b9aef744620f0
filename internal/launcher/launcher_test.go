package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecLauncherStartErrorOnMissingBinary(t *testing.T) {
	l := NewExecLauncher(nil)
	err := l.Start("/nonexistent/binary-for-launcher-test")
	assert.Error(t, err)
}

func TestRecorderCapturesOrder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Shell("/etc/init.d/S99fbterm start_with_input"))
	require.NoError(t, r.Start("reboot"))

	require.Len(t, r.Calls, 2)
	assert.Equal(t, "sh", r.Calls[0].Name)
	assert.Equal(t, []string{"-c", "/etc/init.d/S99fbterm start_with_input"}, r.Calls[0].Args)
	assert.Equal(t, "reboot", r.Calls[1].Name)

	assert.Equal(t, []string{"/etc/init.d/S99fbterm start_with_input"}, r.Shells())
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, "'/oem/nes_game/a.nes'", ShellQuote("/oem/nes_game/a.nes"))
	assert.Equal(t, `'it'\''s.nes'`, ShellQuote("it's.nes"))
}

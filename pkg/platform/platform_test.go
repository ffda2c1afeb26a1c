package platform

import (
	"bytes"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecCommand_CapturesOutputAndExitCode(t *testing.T) {
	p := NewBasePlatform()

	var out bytes.Buffer
	cmd := p.CreateCommand("sh", "-c", "echo converted; exit 3")
	cmd.SetStdout(&out)
	cmd.SetStderr(&out)
	cmd.SetSysProcAttr(p.CreateProcessGroup())

	assert.Equal(t, -1, cmd.ExitCode())
	require.NoError(t, cmd.Start())
	require.NotNil(t, cmd.Process())
	assert.Greater(t, cmd.Process().Pid(), 0)

	assert.Error(t, cmd.Wait())
	assert.Equal(t, 3, cmd.ExitCode())
	assert.Equal(t, "converted\n", out.String())
}

func TestExecCommand_ProcessNilBeforeStart(t *testing.T) {
	cmd := NewBasePlatform().CreateCommand("true")
	assert.Nil(t, cmd.Process())
}

func TestMockPlatform_FailuresAndTracking(t *testing.T) {
	mp := NewMockPlatform()
	path := filepath.Join(t.TempDir(), "a")

	mp.ShouldFailOpenFile = true
	_, err := mp.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	require.Error(t, err)

	var perr *PlatformError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "openfile", perr.Operation)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, "mock openfile: permission denied", err.Error())

	mp.ShouldFailOpenFile = false
	f, err := mp.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	mp.ShouldFailRemove = true
	assert.Error(t, mp.Remove(path))
	assert.FileExists(t, path)

	assert.NoError(t, mp.Kill(-12345, syscall.SIGTERM))
	assert.Equal(t, []KillCall{{PID: -12345, Signal: syscall.SIGTERM}}, mp.Kills())
	assert.Equal(t, []string{path}, mp.Removes())

	mp.Reset()
	assert.Empty(t, mp.Kills())
	assert.False(t, mp.ShouldFailRemove)
}

func TestNewPlatform_Singleton(t *testing.T) {
	a := NewPlatform()
	b := NewPlatform()
	assert.Same(t, a, b)
	assert.True(t, GetPlatformInfo().ProcessGroups)
}

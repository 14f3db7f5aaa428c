package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roskit/internal/types"
)

// writeStub installs a shell script standing in for the rosdep binary.
func writeStub(t *testing.T, script string) RosdepExecAdapter {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "rosdep")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return RosdepExecAdapter{Binary: path}
}

func TestRosdepExec_CheckReady(t *testing.T) {
	adapter := writeStub(t, "exit 0\n")
	status, err := adapter.Check(t.Context(), "/tmp/share")
	require.NoError(t, err)
	assert.Equal(t, types.DatabaseReady, status)
}

func TestRosdepExec_CheckUninitialized(t *testing.T) {
	adapter := writeStub(t, `echo "ERROR: your rosdep installation has not been initialized yet. Please run rosdep init" >&2
exit 1
`)
	status, err := adapter.Check(t.Context(), "/tmp/share")
	require.NoError(t, err)
	assert.Equal(t, types.DatabaseUninitialized, status)
}

func TestRosdepExec_CheckStale(t *testing.T) {
	adapter := writeStub(t, `echo "ERROR: your rosdep cache is out of date. Please run rosdep update" >&2
exit 1
`)
	status, err := adapter.Check(t.Context(), "/tmp/share")
	require.NoError(t, err)
	assert.Equal(t, types.DatabaseStale, status)
}

func TestRosdepExec_CheckUnknownFailure(t *testing.T) {
	adapter := writeStub(t, `echo "something exploded" >&2
exit 1
`)
	_, err := adapter.Check(t.Context(), "/tmp/share")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rosdep check failed")
}

func TestRosdepExec_KeysParsesAndPassesArgs(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	adapter := writeStub(t, fmt.Sprintf(`echo "$@" > %q
printf 'eigen\nzlib\n\n'
`, argsFile))

	keys, err := adapter.Keys(t.Context(), []string{"/ws/a/share", "/ws/b/share"}, types.DefaultPhases)
	require.NoError(t, err)
	assert.Equal(t, []string{"eigen", "zlib"}, keys)

	recorded, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t,
		"keys -i -t buildtool_export -t build_export -t exec --from-paths /ws/a/share /ws/b/share\n",
		string(recorded))
}

func TestRosdepExec_KeysFailure(t *testing.T) {
	adapter := writeStub(t, `echo "no database" >&2
exit 2
`)
	_, err := adapter.Keys(t.Context(), []string{"/ws/share"}, types.DefaultPhases)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rosdep keys failed")
}

func TestRosdepExec_Version(t *testing.T) {
	adapter := writeStub(t, "echo 0.22.2\n")
	version, err := adapter.Version(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "0.22.2", version)
}

func TestRosdepExec_ExportsPythonVersion(t *testing.T) {
	adapter := writeStub(t, `if [ "$ROS_PYTHON_VERSION" != "3" ]; then exit 7; fi
exit 0
`)
	status, err := adapter.Check(t.Context(), "/tmp/share")
	require.NoError(t, err)
	assert.Equal(t, types.DatabaseReady, status)
}

// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteExecutable writes a script to path and marks it executable. It
// fails the test on any I/O error.
func WriteExecutable(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
}

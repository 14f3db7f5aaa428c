package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceAdapter_FindSharePaths(t *testing.T) {
	root := t.TempDir()
	// Two share directories at different depths.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "install", "share", "pkg_a"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "overlay", "install", "share"), 0755))
	// A regular file named share must not count.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "other"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "other", "share"), []byte("not a dir"), 0644))

	adapter := NewWorkspaceAdapter()
	paths, err := adapter.FindSharePaths(root)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Contains(t, paths, filepath.Join(root, "install", "share"))
	assert.Contains(t, paths, filepath.Join(root, "overlay", "install", "share"))
}

func TestWorkspaceAdapter_SkipsGitDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "share"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "install", "share"), 0755))

	adapter := NewWorkspaceAdapter()
	paths, err := adapter.FindSharePaths(root)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(root, "install", "share"), paths[0])
}

func TestWorkspaceAdapter_EmptyRootErrors(t *testing.T) {
	adapter := NewWorkspaceAdapter()
	_, err := adapter.FindSharePaths("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workspace root is empty")
}

func TestWorkspaceAdapter_NonExistentRootErrors(t *testing.T) {
	adapter := NewWorkspaceAdapter()
	_, err := adapter.FindSharePaths("/nonexistent/path/that/does/not/exist")
	require.Error(t, err)
}

func TestWorkspaceAdapter_NoSharesReturnsNil(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "pkg"), 0755))
	adapter := NewWorkspaceAdapter()
	paths, err := adapter.FindSharePaths(root)
	require.NoError(t, err)
	assert.Nil(t, paths)
}

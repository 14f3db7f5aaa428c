package adapters

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"roskit/internal/ports"
)

type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

// FindSharePaths walks a workspace root and returns every directory named
// "share", in lexical walk order. Installed packages register their
// manifests under such directories (REP-122), so these are the roots the
// dependency database gets pointed at.
func (a WorkspaceAdapter) FindSharePaths(root string) ([]string, error) {
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is empty")
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is not a directory").
			WithCause(err)
	}
	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		if d.Name() == "share" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan workspace").
			WithCause(err)
	}
	return paths, nil
}

var _ ports.WorkspacePort = WorkspaceAdapter{}

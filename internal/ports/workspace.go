package ports

// WorkspacePort discovers `share` directories within workspace roots,
// following the REP-122 filesystem layout for installed packages.
type WorkspacePort interface {
	FindSharePaths(root string) ([]string, error)
}

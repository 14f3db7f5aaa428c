package app

type CollectRequest struct {
	Workspaces []string
	OutputPath string
	ReportPath string
}

type CollectResult struct {
	Keys       []string
	Skipped    []string
	SharePaths int
	OutputPath string
}

package types

// DependencyPhase classifies when a dependency key is needed, matching the
// rosdep `-t` filter values.
type DependencyPhase string

const (
	PhaseBuildtoolExport DependencyPhase = "buildtool_export"
	PhaseBuildExport     DependencyPhase = "build_export"
	PhaseExec            DependencyPhase = "exec"
)

// DefaultPhases is the phase filter used for system dependency collection:
// everything a binary overlay needs at build-export and execution time.
var DefaultPhases = []DependencyPhase{
	PhaseBuildtoolExport,
	PhaseBuildExport,
	PhaseExec,
}

// DatabaseStatus is the outcome of probing the local rosdep database.
type DatabaseStatus string

const (
	DatabaseReady         DatabaseStatus = "ready"
	DatabaseStale         DatabaseStatus = "stale"
	DatabaseUninitialized DatabaseStatus = "uninitialized"
)

// CollectReport summarizes one collection run for the optional YAML report.
type CollectReport struct {
	Workspaces  []string `yaml:"workspaces"`
	SharePaths  int      `yaml:"share_paths"`
	ToolVersion string   `yaml:"tool_version,omitempty"`
	Keys        []string `yaml:"keys"`
	Skipped     []string `yaml:"skipped,omitempty"`
}

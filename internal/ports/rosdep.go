package ports

import (
	"context"

	"roskit/internal/types"
)

// RosdepPort is the external rosdep database tool, modeled as an injectable
// capability so tests can substitute a fake without spawning processes.
type RosdepPort interface {
	// Check probes database readiness against a single share path and
	// classifies the outcome. The error is non-nil only for failures that
	// do not map onto a DatabaseStatus.
	Check(ctx context.Context, sharePath string) (types.DatabaseStatus, error)

	// Update refreshes the local database. This hits the network.
	Update(ctx context.Context) error

	// Keys lists transitive dependency keys declared by the manifests under
	// the given share paths, restricted to the given phases. Keys come back
	// as emitted by the tool: unsorted, possibly duplicated.
	Keys(ctx context.Context, sharePaths []string, phases []types.DependencyPhase) ([]string, error)

	// Version reports the tool's own version string, best effort.
	Version(ctx context.Context) (string, error)
}

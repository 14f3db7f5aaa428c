package adapters

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"roskit/internal/ports"
	"roskit/internal/shared"
	"roskit/internal/types"
)

// RosdepExecAdapter drives the rosdep CLI as a subprocess. All invocations
// run with ROS_PYTHON_VERSION=3 so the database resolves python3 variants.
type RosdepExecAdapter struct {
	Binary string
}

func NewRosdepExecAdapter() RosdepExecAdapter {
	return RosdepExecAdapter{Binary: "rosdep"}
}

func (a RosdepExecAdapter) Check(ctx context.Context, sharePath string) (types.DatabaseStatus, error) {
	_, stderr, err := a.run(ctx, "check", "--from-paths", sharePath)
	if err == nil {
		return types.DatabaseReady, nil
	}
	// rosdep reports an unusable database on stderr, telling the user
	// which command to run. That instruction is the classification.
	switch {
	case strings.Contains(stderr, "rosdep init"):
		return types.DatabaseUninitialized, nil
	case strings.Contains(stderr, "rosdep update"):
		return types.DatabaseStale, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("rosdep check failed").
		WithCause(shared.CommandError([]byte(stderr), err))
}

func (a RosdepExecAdapter) Update(ctx context.Context) error {
	_, stderr, err := a.run(ctx, "update")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("rosdep update failed").
			WithCause(shared.CommandError([]byte(stderr), err))
	}
	return nil
}

func (a RosdepExecAdapter) Keys(ctx context.Context, sharePaths []string, phases []types.DependencyPhase) ([]string, error) {
	args := []string{"keys", "-i"}
	for _, phase := range phases {
		args = append(args, "-t", string(phase))
	}
	args = append(args, "--from-paths")
	args = append(args, sharePaths...)
	stdout, stderr, err := a.run(ctx, args...)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("rosdep keys failed").
			WithCause(shared.CommandError([]byte(stderr), err))
	}
	var keys []string
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			keys = append(keys, line)
		}
	}
	return keys, nil
}

func (a RosdepExecAdapter) Version(ctx context.Context) (string, error) {
	stdout, stderr, err := a.run(ctx, "--version")
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("rosdep version probe failed").
			WithCause(shared.CommandError([]byte(stderr), err))
	}
	line, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSpace(line), nil
}

func (a RosdepExecAdapter) run(ctx context.Context, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, a.Binary, args...)
	cmd.Env = append(os.Environ(), "ROS_PYTHON_VERSION=3")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

var _ ports.RosdepPort = RosdepExecAdapter{}

package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"roskit/internal/adapters"
	"roskit/internal/core"
	"roskit/internal/types"
)

// Collect computes the sorted set of system dependency keys required by
// every package manifest reachable under the workspaces' share directories,
// minus the fixed skip list, and writes it to the configured sink.
func (s Service) Collect(ctx context.Context, req CollectRequest) (CollectResult, error) {
	if len(req.Workspaces) == 0 {
		return CollectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one workspace path is required")
	}

	var sharePaths []string
	for _, root := range req.Workspaces {
		assert.NotEmpty(ctx, root, "workspace path must not be empty")
		paths, err := s.Workspace.FindSharePaths(root)
		if err != nil {
			return CollectResult{}, err
		}
		sharePaths = append(sharePaths, paths...)
	}
	if len(sharePaths) == 0 {
		// The readiness probe reads the first share path, so an empty
		// discovery has to stop here, before any rosdep subprocess runs.
		return CollectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no share directories found under the given workspaces")
	}

	// Probe the database against the first share path only. The keys query
	// below covers all of them.
	status, err := s.Rosdep.Check(ctx, sharePaths[0])
	if err != nil {
		return CollectResult{}, err
	}
	switch status {
	case types.DatabaseUninitialized:
		return CollectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("the rosdep database is not initialized; run `rosdep init` once and retry")
	case types.DatabaseStale:
		log.Ctx(ctx).Info().Msg("rosdep database is outdated, running update")
		if err := s.Rosdep.Update(ctx); err != nil {
			return CollectResult{}, err
		}
	}

	version := s.rosdepVersion(ctx)

	rawKeys, err := s.Rosdep.Keys(ctx, sharePaths, types.DefaultPhases)
	if err != nil {
		return CollectResult{}, err
	}
	keys, skipped := core.NewKeyFilter().Filter(rawKeys)
	log.Ctx(ctx).Debug().
		Int("keys", len(keys)).
		Int("skipped", len(skipped)).
		Int("share_paths", len(sharePaths)).
		Msg("rosdep keys collected")

	output := adapters.NewOutputFileAdapter(req.OutputPath)
	if err := output.WriteKeys(keys); err != nil {
		return CollectResult{}, err
	}
	if req.ReportPath != "" {
		report := adapters.NewReportYAMLAdapter(req.ReportPath)
		if err := report.WriteReport(types.CollectReport{
			Workspaces:  req.Workspaces,
			SharePaths:  len(sharePaths),
			ToolVersion: version,
			Keys:        keys,
			Skipped:     skipped,
		}); err != nil {
			return CollectResult{}, err
		}
	}

	return CollectResult{
		Keys:       keys,
		Skipped:    skipped,
		SharePaths: len(sharePaths),
		OutputPath: req.OutputPath,
	}, nil
}

// rosdepVersion probes the tool version, best effort. Collection proceeds
// regardless; old releases only draw a warning.
func (s Service) rosdepVersion(ctx context.Context) string {
	version, err := s.Rosdep.Version(ctx)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("rosdep version probe failed")
		return ""
	}
	if !core.RosdepVersionSupported(version) {
		log.Ctx(ctx).Warn().
			Str("version", version).
			Msg("rosdep is older than the minimum supported release")
	}
	return version
}

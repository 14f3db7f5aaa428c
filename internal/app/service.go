package app

import (
	"roskit/internal/adapters"
	"roskit/internal/ports"
)

type Service struct {
	Workspace ports.WorkspacePort
	Rosdep    ports.RosdepPort
}

func NewService() Service {
	return Service{
		Workspace: adapters.NewWorkspaceAdapter(),
		Rosdep:    adapters.NewRosdepExecAdapter(),
	}
}

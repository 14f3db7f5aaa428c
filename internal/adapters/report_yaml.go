package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"roskit/internal/ports"
	"roskit/internal/types"
)

// ReportYAMLAdapter writes the optional collection report as YAML.
type ReportYAMLAdapter struct {
	Path string
}

func NewReportYAMLAdapter(path string) ReportYAMLAdapter {
	return ReportYAMLAdapter{Path: path}
}

func (a ReportYAMLAdapter) WriteReport(report types.CollectReport) error {
	if a.Path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is empty")
	}
	content, err := yaml.Marshal(report)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render collection report").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path, content, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write collection report").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportPort = ReportYAMLAdapter{}

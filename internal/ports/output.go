package ports

import "roskit/internal/types"

type KeysOutputPort interface {
	WriteKeys(keys []string) error
}

type ReportPort interface {
	WriteReport(report types.CollectReport) error
}

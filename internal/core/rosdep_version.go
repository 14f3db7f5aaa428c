package core

import (
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// minSupportedRosdep is the oldest rosdep release known to support the
// phase filters the collector passes via `-t`.
const minSupportedRosdep = "0.16.0"

// RosdepVersionSupported reports whether the raw output of
// `rosdep --version` meets the minimum supported release. rosdep versions
// follow PEP 440. Unparseable input counts as unsupported.
func RosdepVersionSupported(raw string) bool {
	value := strings.TrimSpace(raw)
	if value == "" {
		return false
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return false
	}
	minimum, err := pep440.Parse(minSupportedRosdep)
	if err != nil {
		return false
	}
	return parsed.GreaterThan(minimum) || parsed.Equal(minimum)
}

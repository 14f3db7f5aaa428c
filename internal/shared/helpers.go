// Package shared provides small utility functions used across multiple
// packages in the roskit codebase.
package shared

import (
	"fmt"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return err
	}
	return fmt.Errorf("%s: %w", trimmed, err)
}

package adapters

import (
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"roskit/internal/ports"
)

// OutputFileAdapter writes the collected keys to a file, or to standard
// output when no path is configured. The full block is rendered before
// anything is written, so output is all-or-nothing.
type OutputFileAdapter struct {
	Path string
	// Stdout overrides the default sink for tests. Nil means os.Stdout.
	Stdout io.Writer
}

func NewOutputFileAdapter(path string) OutputFileAdapter {
	return OutputFileAdapter{Path: path}
}

func (a OutputFileAdapter) WriteKeys(keys []string) error {
	content := strings.Join(keys, "\n") + "\n"
	if a.Path == "" {
		sink := a.Stdout
		if sink == nil {
			sink = os.Stdout
		}
		if _, err := io.WriteString(sink, content); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write keys to stdout").
				WithCause(err)
		}
		return nil
	}
	if err := os.WriteFile(a.Path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write keys file").
			WithCause(err)
	}
	return nil
}

var _ ports.KeysOutputPort = OutputFileAdapter{}

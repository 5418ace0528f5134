// Package source reads a whole log from a named file or standard input.
package source

import (
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/status-plot/internal/apperr"
	"github.com/iwvelando/status-plot/pkg/constants"
)

// Source is an input descriptor resolved once at the command boundary.
type Source struct {
	// Path is empty for standard input.
	Path string
}

// New returns a file source for path, or the standard input source when path
// is empty.
func New(path string) Source {
	return Source{Path: path}
}

// IsStdin reports whether the source reads standard input.
func (s Source) IsStdin() bool {
	return s.Path == ""
}

// Name identifies the source in messages.
func (s Source) Name() string {
	if s.IsStdin() {
		return constants.StdinName
	}
	return s.Path
}

// ReadAll reads the whole source into memory. stdin is used only for the
// standard input source and is never closed. A file is always closed before
// ReadAll returns.
func (s Source) ReadAll(stdin io.Reader) (text string, err error) {
	if s.IsStdin() {
		if stdin == nil {
			return "", apperr.Wrap("source.ReadAll", apperr.KindIO, s.Name(), fmt.Errorf("no standard input available"))
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", apperr.Wrap("source.ReadAll", apperr.KindIO, s.Name(), err)
		}
		return string(data), nil
	}

	file, err := os.Open(s.Path)
	if err != nil {
		return "", apperr.Wrap("source.ReadAll", apperr.KindIO, s.Path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			text = ""
			err = apperr.Wrap("source.ReadAll", apperr.KindIO, s.Path, cerr)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", apperr.Wrap("source.ReadAll", apperr.KindIO, s.Path, err)
	}
	return string(data), nil
}

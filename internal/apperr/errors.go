// Package apperr classifies the errors that abort a run.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a coarse-grained categorization for errors.
type Kind string

const (
	KindParse  Kind = "parse"
	KindIO     Kind = "io"
	KindFormat Kind = "format"
	KindRender Kind = "render"
	KindConfig Kind = "config"
)

// Error wraps an underlying error with the operation that failed and a kind.
type Error struct {
	Op   string
	Kind Kind
	Path string // Optional: relevant file path or input name
	Err  error
}

// Wrap returns nil when err is nil. An err that already carries a kind keeps it.
func Wrap(op string, kind Kind, path string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Op: op, Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf returns the kind of the outermost *Error in err's chain, or "" when
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

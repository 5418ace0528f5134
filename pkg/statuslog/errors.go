package statuslog

import (
	"errors"
	"fmt"
)

// Sentinel errors for each parse failure reason. Match with errors.Is.
var (
	ErrMissingToken  = errors.New("missing value")
	ErrFloatParse    = errors.New("invalid float")
	ErrIntParse      = errors.New("invalid integer")
	ErrUnknownStatus = errors.New("unknown status value")
)

// ParseError reports a record that could not be parsed.
type ParseError struct {
	// Line is the 1-based line number, or 0 when parsing a single record.
	Line int
	// Column is the field position within the line: 0 for the payload, 1 for the status.
	Column int
	Reason error
	// Text is the offending token after trimming.
	Text string
	// Code is the rejected status code when Reason is ErrUnknownStatus.
	Code uint64
	// Err is the underlying strconv error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var msg string
	switch e.Reason {
	case ErrMissingToken:
		msg = fmt.Sprintf("missing value on column %d", e.Column)
	case ErrUnknownStatus:
		msg = fmt.Sprintf("unknown status value %d on column %d (expected ``, `0`, `1`, `2`)", e.Code, e.Column)
	default:
		msg = fmt.Sprintf("%v %q on column %d", e.Reason, e.Text, e.Column)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// Is matches the sentinel for the failure reason.
func (e *ParseError) Is(target error) bool {
	return e != nil && e.Reason == target
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

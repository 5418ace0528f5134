package statuslog

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	valueColumn  = 0
	statusColumn = 1
)

// ParseLog parses every line of text in order. The first bad line aborts the
// whole parse and no partial result is returned. Empty text yields an empty
// slice and no error.
func ParseLog(text string) ([]StatusValue, error) {
	lines := splitLines(text)
	values := make([]StatusValue, 0, len(lines))
	for i, line := range lines {
		value, err := ParseRecord(line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = i + 1
			}
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// ParseRecord parses a single "<float>,<optional-int>" record.
func ParseRecord(line string) (StatusValue, error) {
	tokens := strings.Split(line, ",")

	value, err := parseValue(tokens)
	if err != nil {
		return StatusValue{}, err
	}

	code, ok, err := parseStatusCode(tokens)
	if err != nil {
		return StatusValue{}, err
	}
	if !ok {
		return NewInfeasible(value), nil
	}

	status, known := statusForCode(code)
	if !known {
		return StatusValue{}, &ParseError{
			Column: statusColumn,
			Reason: ErrUnknownStatus,
			Text:   strconv.FormatUint(code, 10),
			Code:   code,
		}
	}
	return StatusValue{Status: status, Value: value}, nil
}

func parseValue(tokens []string) (float64, error) {
	token, err := tokenAt(tokens, valueColumn)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, &ParseError{Column: valueColumn, Reason: ErrFloatParse, Text: token, Err: err}
	}
	// NaN and Inf cannot be placed on a chart axis.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ParseError{Column: valueColumn, Reason: ErrFloatParse, Text: token}
	}
	return value, nil
}

// parseStatusCode returns false when the status field is present but empty.
func parseStatusCode(tokens []string) (uint64, bool, error) {
	token, err := tokenAt(tokens, statusColumn)
	if err != nil {
		return 0, false, err
	}
	if len(token) == 0 {
		return 0, false, nil
	}
	code, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, false, &ParseError{Column: statusColumn, Reason: ErrIntParse, Text: token, Err: err}
	}
	return code, true, nil
}

func tokenAt(tokens []string, column int) (string, error) {
	if column >= len(tokens) {
		return "", &ParseError{Column: column, Reason: ErrMissingToken}
	}
	return strings.TrimSpace(tokens[column]), nil
}

// splitLines splits on '\n', drops a trailing '\r' from each line and does not
// produce an empty final line for text ending in a newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

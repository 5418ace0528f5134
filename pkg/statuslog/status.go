// Package statuslog parses solver run logs into status-tagged values.
//
// A log holds one record per line in the form "<float>,<optional-int>". The
// float is the size/ratio payload and the integer is the run's status code:
// empty means infeasible, 0 linear, 1 integer and 2 timeout.
package statuslog

import (
	"fmt"
	"strconv"
)

// Status classifies the outcome of one solver run.
type Status uint8

const (
	// Infeasible is a run with no status recorded.
	Infeasible Status = iota
	// Linear is status code 0.
	Linear
	// Integer is status code 1.
	Integer
	// Timeout is status code 2.
	Timeout
)

// Statuses lists every status in a fixed order.
var Statuses = []Status{Infeasible, Linear, Integer, Timeout}

func (s Status) String() string {
	switch s {
	case Infeasible:
		return "Infeasible"
	case Linear:
		return "Linear"
	case Integer:
		return "Integer"
	case Timeout:
		return "Timeout"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// statusForCode maps a parsed status code to its Status.
func statusForCode(code uint64) (Status, bool) {
	switch code {
	case 0:
		return Linear, true
	case 1:
		return Integer, true
	case 2:
		return Timeout, true
	default:
		return Infeasible, false
	}
}

// StatusValue is one parsed record: a status and its payload.
type StatusValue struct {
	Status Status
	Value  float64
}

func NewInfeasible(v float64) StatusValue { return StatusValue{Status: Infeasible, Value: v} }
func NewLinear(v float64) StatusValue     { return StatusValue{Status: Linear, Value: v} }
func NewInteger(v float64) StatusValue    { return StatusValue{Status: Integer, Value: v} }
func NewTimeout(v float64) StatusValue    { return StatusValue{Status: Timeout, Value: v} }

// Code returns the status code of the record. The boolean is false for
// Infeasible records, which have no code.
func (v StatusValue) Code() (uint64, bool) {
	switch v.Status {
	case Linear:
		return 0, true
	case Integer:
		return 1, true
	case Timeout:
		return 2, true
	default:
		return 0, false
	}
}

// CSV serializes the record back into log form.
func (v StatusValue) CSV() string {
	value := strconv.FormatFloat(v.Value, 'g', -1, 64)
	if code, ok := v.Code(); ok {
		return value + "," + strconv.FormatUint(code, 10)
	}
	return value + ","
}

func (v StatusValue) String() string {
	return fmt.Sprintf("%s(%v)", v.Status, v.Value)
}

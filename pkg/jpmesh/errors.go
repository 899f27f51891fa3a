package jpmesh

import "fmt"

// Axis names the coordinate component that failed validation.
type Axis string

const (
	AxisLatitude  Axis = "latitude"
	AxisLongitude Axis = "longitude"
)

// OutOfRangeError reports a latitude or longitude outside its legal range.
type OutOfRangeError struct {
	Axis  Axis
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %v out of range [%v, %v]", e.Axis, e.Value, e.Min, e.Max)
}

// InvalidCodeError reports a mesh code that fails length, prefix or
// digit-range validation. A neighbor move off the edge of the covered
// territory surfaces as an InvalidCodeError for the derived code; callers
// treat that as "no such cell", not as a fault.
type InvalidCodeError struct {
	Code   string
	Reason string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid mesh code %q: %s", e.Code, e.Reason)
}

func invalidCode(code, format string, args ...any) error {
	return &InvalidCodeError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

package format

import "fmt"

// InvalidRangeError reports a time component outside its valid range.
type InvalidRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s value out of range: %d (expected %d-%d)", e.Field, e.Value, e.Min, e.Max)
}

// InvalidTimeFormatError reports user input that is not a recognized time.
type InvalidTimeFormatError struct {
	Value    string
	Expected string
	Err      error
}

func (e *InvalidTimeFormatError) Error() string {
	if e.Err != nil && e.Expected == "" {
		return fmt.Sprintf("invalid time %q: %s", e.Value, e.Err.Error())
	}
	return fmt.Sprintf("invalid time %q: expected %s", e.Value, e.Expected)
}

func (e *InvalidTimeFormatError) Unwrap() error {
	return e.Err
}

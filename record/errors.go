package record

import "fmt"

// ExtractionError reports a row where a labeled time was missing or malformed.
type ExtractionError struct {
	Source string
	Label  string
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	return e.Source + ": " + e.Detail()
}

// Detail is the error message without the source.
func (e *ExtractionError) Detail() string {
	msg := e.Reason
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}

	if e.Label == "" {
		return msg
	}
	return fmt.Sprintf("%q %s", e.Label, msg)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

package calculator

import (
	"errors"
	"time"

	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/record"
)

var ErrEndBeforeStart = errors.New("end time is before start time")

// Duration returns the elapsed time of one test run. Undated pairs whose end
// is earlier than their start crossed midnight once.
func Duration(pair record.TimePair) (time.Duration, error) {
	if pair.Dated {
		if pair.End.Before(pair.Start) {
			return 0, ErrEndBeforeStart
		}
		return pair.End.Sub(pair.Start), nil
	}

	return Span(pair.Start, pair.End), nil
}

// Span is the time from one time of day to the next occurrence of another:
// to - from when to is not earlier, otherwise (24:00:00 - from) + to.
// Dates are ignored.
func Span(from, to time.Time) time.Duration {
	d := format.SinceMidnight(to) - format.SinceMidnight(from)
	if d < 0 {
		d += format.Day
	}
	return d
}

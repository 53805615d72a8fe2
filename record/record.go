package record

import (
	"context"
	"time"
)

const (
	LabelStart = "Test Start Time"
	LabelEnd   = "Test End Time"
)

// Raw is the text read from one input file.
type Raw struct {
	Source string // file name, or index when the text did not come from a file
	Text   string
	Err    error // set when the source could not be read
}

// TimePair holds the start and end of one test run. Without a date both
// values are times of day on the zero date.
type TimePair struct {
	Source string
	Start  time.Time
	End    time.Time
	Dated  bool // both timestamps carry a calendar date
}

type Receiver interface {
	Receive(records []Raw) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, receiver Receiver) error
}

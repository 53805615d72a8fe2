package summary

import (
	"time"

	"github.com/google/uuid"
)

const (
	ModeCompletion = "completion"
	ModeStart      = "start"
)

// where a FloatResult reference time came from
const (
	RefAnchor        = "anchor"
	RefEarliestStart = "earliest start"
	RefMidnight      = "midnight"
	RefDeadline      = "deadline"
	RefEndOfDay      = "end of day"
)

// Detail is the computed duration of one processed file.
type Detail struct {
	Source   string
	Start    time.Time
	End      time.Time
	Dated    bool
	Duration time.Duration
}

// Skip records a file that could not be used, and why.
type Skip struct {
	Source string
	Reason string
	Err    error
}

type AggregateResult struct {
	Total         time.Duration
	Processed     int
	Details       []Detail // input order
	Skipped       []Skip
	EarliestStart *time.Time // time of day, nil when nothing was processed
}

// FloatResult is the slack left against a target. A negative Float means
// the target is missed by that much.
type FloatResult struct {
	Mode      string
	Target    time.Time
	Reference time.Time // anchor in completion mode, deadline in start mode
	RefSource string    // where Reference came from, for the report
	Window    time.Duration
	Float     time.Duration
	Finish    time.Time // projected time of day the work is done
}

type Summary struct {
	RunID         string
	Aggregate     AggregateResult
	Float         *FloatResult
	TotalWorkTime *time.Duration
}

func Build(agg AggregateResult, float *FloatResult, workTime *time.Duration) Summary {
	return Summary{
		RunID:         uuid.NewString(),
		Aggregate:     agg,
		Float:         float,
		TotalWorkTime: workTime,
	}
}

type Output interface {
	OutputSummary(sum Summary) error
}

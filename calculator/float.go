package calculator

import (
	"errors"
	"fmt"
	"time"

	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/summary"
)

var ErrNoTarget = errors.New("no target time given")

var midnight = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)

// Float computes the slack left when total test time is spent against the
// target.
//
// Completion: the window runs from the anchor (given, else the earliest
// recorded start, else midnight) to the target on the same day. A target
// before the anchor gives a negative window.
// Start: the window runs from the target to the deadline, or to the end of
// the day.
//
// In both cases float = window - total, and may be negative.
func Float(total time.Duration, earliestStart *time.Time, target Target) (summary.FloatResult, error) {
	switch t := target.(type) {
	case CompletionTarget:
		anchor, refSource := midnight, summary.RefMidnight
		if t.Anchor != nil {
			anchor, refSource = format.ClockOf(*t.Anchor), summary.RefAnchor
		} else if earliestStart != nil {
			anchor, refSource = format.ClockOf(*earliestStart), summary.RefEarliestStart
		}

		window := format.SinceMidnight(t.At) - format.SinceMidnight(anchor)
		return summary.FloatResult{
			Mode:      summary.ModeCompletion,
			Target:    format.ClockOf(t.At),
			Reference: anchor,
			RefSource: refSource,
			Window:    window,
			Float:     window - total,
			Finish:    format.ClockOf(anchor.Add(total)),
		}, nil

	case StartTarget:
		deadline, refSource := midnight, summary.RefEndOfDay
		window := format.Day - format.SinceMidnight(t.At)
		if t.Deadline != nil {
			deadline, refSource = format.ClockOf(*t.Deadline), summary.RefDeadline
			window = Span(t.At, deadline)
		}

		return summary.FloatResult{
			Mode:      summary.ModeStart,
			Target:    format.ClockOf(t.At),
			Reference: deadline,
			RefSource: refSource,
			Window:    window,
			Float:     window - total,
			Finish:    format.ClockOf(t.At.Add(total)),
		}, nil

	case nil:
		return summary.FloatResult{}, ErrNoTarget

	default:
		return summary.FloatResult{}, fmt.Errorf("unsupported target type %T", target)
	}
}

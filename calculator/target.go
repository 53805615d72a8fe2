package calculator

import (
	"fmt"
	"strings"
	"time"

	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/parameter"
	"github.com/sporadisk/testclock/summary"
)

// Target is the time the float is measured against: either a
// CompletionTarget or a StartTarget.
type Target interface {
	Mode() string
}

// CompletionTarget is the time the work must be done by. Without an Anchor
// the work is counted from the earliest recorded start.
type CompletionTarget struct {
	At     time.Time
	Anchor *time.Time
}

// StartTarget is the time the work starts. Without a Deadline the available
// window runs to the end of the day.
type StartTarget struct {
	At       time.Time
	Deadline *time.Time
}

func (CompletionTarget) Mode() string { return summary.ModeCompletion }

func (StartTarget) Mode() string { return summary.ModeStart }

var targetModes = []string{summary.ModeCompletion, summary.ModeStart}

// ParseTarget builds a Target from user input. at and the optional reference
// accept HH:MM:SS, HHMM or HHMMSS; other input yields a
// *format.InvalidTimeFormatError.
func ParseTarget(mode, at, reference string) (Target, error) {
	m, err := parameter.Validate(mode, targetModes)
	if err != nil {
		return nil, fmt.Errorf("target mode: %w", err)
	}

	atTime, err := format.ParseTarget(at)
	if err != nil {
		return nil, fmt.Errorf("%s time: %w", m, err)
	}

	var ref *time.Time
	if strings.TrimSpace(reference) != "" {
		r, err := format.ParseTarget(reference)
		if err != nil {
			return nil, fmt.Errorf("%s reference: %w", m, err)
		}
		ref = &r
	}

	if m == summary.ModeStart {
		return StartTarget{At: atTime, Deadline: ref}, nil
	}
	return CompletionTarget{At: atTime, Anchor: ref}, nil
}

package csvfile

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/record"
)

// Extract returns the start and end times found in raw. The first occurrence
// of each label wins. Dates are kept only when both labels carry one.
func (e *Extractor) Extract(raw record.Raw) (record.TimePair, error) {
	if raw.Err != nil {
		return record.TimePair{}, &record.ExtractionError{
			Source: raw.Source,
			Reason: "could not be read",
			Err:    raw.Err,
		}
	}

	start, startDated, err := extractTime(raw, record.LabelStart, e.startLabel, e.startPattern)
	if err != nil {
		return record.TimePair{}, err
	}

	end, endDated, err := extractTime(raw, record.LabelEnd, e.endLabel, e.endPattern)
	if err != nil {
		return record.TimePair{}, err
	}

	pair := record.TimePair{
		Source: raw.Source,
		Start:  start,
		End:    end,
		Dated:  startDated && endDated,
	}

	if !pair.Dated {
		pair.Start = format.ClockOf(start)
		pair.End = format.ClockOf(end)
	}

	return pair, nil
}

func extractTime(raw record.Raw, label string, labelPattern, valuePattern *regexp.Regexp) (ts time.Time, dated bool, err error) {
	matches := valuePattern.FindStringSubmatch(raw.Text)
	if matches == nil {
		reason := "not found"
		if labelPattern.MatchString(raw.Text) {
			reason = "has no HH:MM:SS value"
		}
		return time.Time{}, false, &record.ExtractionError{
			Source: raw.Source,
			Label:  label,
			Reason: reason,
		}
	}

	clock, err := format.ParseClock(matches[4])
	if err != nil {
		return time.Time{}, false, &record.ExtractionError{
			Source: raw.Source,
			Label:  label,
			Reason: fmt.Sprintf("value %q is not a valid time", matches[4]),
			Err:    err,
		}
	}

	if matches[3] == "" {
		return clock, false, nil
	}

	ts, err = withDate(clock, matches[1], matches[2], matches[3])
	if err != nil {
		return time.Time{}, false, &record.ExtractionError{
			Source: raw.Source,
			Label:  label,
			Reason: fmt.Sprintf("date %s/%s/%s is not valid", matches[1], matches[2], matches[3]),
			Err:    err,
		}
	}

	return ts, true, nil
}

// Expected date format: "mm/dd/yyyy"
// the pattern only hands us digits, so Atoi cannot fail here
func withDate(clock time.Time, monthStr, dayStr, yearStr string) (time.Time, error) {
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)

	if month < 1 || month > 12 {
		return time.Time{}, &format.InvalidRangeError{Field: "month", Value: month, Min: 1, Max: 12}
	}

	ts := time.Date(year, time.Month(month), day, clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
	if day < 1 || ts.Day() != day {
		return time.Time{}, &format.InvalidRangeError{Field: "day", Value: day, Min: 1, Max: 31}
	}

	return ts, nil
}

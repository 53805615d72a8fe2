package format

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const Day = 24 * time.Hour

var (
	clockPattern     = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)
	compactPattern   = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})?$`)
	workClockPattern = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})$`)
)

// NewClock returns the time of day h:m:s on the zero date, the same value
// time.Parse("15:04:05", ...) would produce.
func NewClock(hour, minute, second int) (time.Time, error) {
	if hour < 0 || hour > 23 {
		return time.Time{}, &InvalidRangeError{Field: "hour", Value: hour, Max: 23}
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, &InvalidRangeError{Field: "minute", Value: minute, Max: 59}
	}
	if second < 0 || second > 59 {
		return time.Time{}, &InvalidRangeError{Field: "second", Value: second, Max: 59}
	}

	return time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC), nil
}

// ClockOf drops the date part of ts.
func ClockOf(ts time.Time) time.Time {
	return time.Date(0, time.January, 1, ts.Hour(), ts.Minute(), ts.Second(), 0, time.UTC)
}

// SinceMidnight returns the offset of the time of day of ts.
func SinceMidnight(ts time.Time) time.Duration {
	return ClockOf(ts).Sub(time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC))
}

// ParseClock parses a strict HH:MM:SS time of day.
func ParseClock(ts string) (time.Time, error) {
	m := clockPattern.FindStringSubmatch(ts)
	if m == nil {
		return time.Time{}, &InvalidTimeFormatError{Value: ts, Expected: "HH:MM:SS"}
	}
	return clockFromParts(m[1], m[2], m[3])
}

// ParseTarget parses a user supplied time of day in HH:MM:SS, HHMM or HHMMSS
// form. Every failure is an *InvalidTimeFormatError.
func ParseTarget(ts string) (time.Time, error) {
	clean := strings.TrimSpace(ts)

	var parts []string
	if m := clockPattern.FindStringSubmatch(clean); m != nil {
		parts = m[1:]
	} else if m := compactPattern.FindStringSubmatch(clean); m != nil {
		parts = m[1:]
	}

	if parts == nil {
		return time.Time{}, &InvalidTimeFormatError{Value: ts, Expected: "HH:MM:SS or HHMM"}
	}

	if parts[2] == "" {
		parts[2] = "00"
	}

	clock, err := clockFromParts(parts[0], parts[1], parts[2])
	if err != nil {
		return time.Time{}, &InvalidTimeFormatError{Value: ts, Err: err}
	}
	return clock, nil
}

// ParseWorkTime parses an amount of time given either as H:MM:SS with
// unbounded hours or as a Go-style duration such as "7h 30m".
func ParseWorkTime(wt string) (time.Duration, error) {
	clean := strings.TrimSpace(wt)

	if m := workClockPattern.FindStringSubmatch(clean); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, &InvalidTimeFormatError{Value: wt, Err: err}
		}
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		if minutes > 59 {
			return 0, &InvalidTimeFormatError{Value: wt, Err: &InvalidRangeError{Field: "minute", Value: minutes, Max: 59}}
		}
		if seconds > 59 {
			return 0, &InvalidTimeFormatError{Value: wt, Err: &InvalidRangeError{Field: "second", Value: seconds, Max: 59}}
		}
		return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
	}

	d, err := ParseDuration(clean)
	if err != nil || d < 0 {
		return 0, &InvalidTimeFormatError{Value: wt, Expected: "H:MM:SS or a duration like 7h 30m", Err: err}
	}
	return d, nil
}

func ParseDuration(d string) (time.Duration, error) {
	return time.ParseDuration(RemoveSpaces(d))
}

func RemoveSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, rune := range s {
		if !unicode.IsSpace(rune) {
			b.WriteRune(rune)
		}
	}
	return b.String()
}

func CleanParam(param string) string {
	return strings.ToLower(strings.TrimSpace(param))
}

// the patterns only hand us digits, so Atoi cannot fail here
func clockFromParts(h, m, s string) (time.Time, error) {
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	second, _ := strconv.Atoi(s)
	return NewClock(hour, minute, second)
}

package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// duration formats
	TimeClock = "clock" // HH:MM:SS (default)
	TimeHMS   = "hms"   // hours, minutes and seconds
	TimeHM    = "hm"    // hours and minutes
	TimeM     = "m"     // minutes
)

func Timestamp(ts time.Time) string {
	return ts.Format("15:04:05")
}

// Duration renders d in the given time format, falling back to Clock.
func Duration(d time.Duration, timeFormat string) string {
	switch timeFormat {
	case TimeM:
		return DurationM(d)
	case TimeHM:
		return DurationHM(d)
	case TimeHMS:
		return DurationHMS(d)
	default:
		return Clock(d)
	}
}

// Clock renders d as HH:MM:SS. Hours are not wrapped at 24 and negative
// durations get a leading minus sign.
func Clock(d time.Duration) string {
	sign, d := splitSign(d)
	d = d.Truncate(time.Second)

	hours := int64(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int64(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int64(d / time.Second)

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
}

func DurationM(d time.Duration) string {
	sign, d := splitSign(d)
	return fmt.Sprintf("%s%dm", sign, int(math.Floor(d.Minutes())))
}

func DurationHM(d time.Duration) string {
	sign, d := splitSign(d)
	hours := int(math.Floor(d.Hours()))
	d = d - (time.Duration(hours) * time.Hour)
	minutes := int(math.Floor(d.Minutes()))

	var sb strings.Builder
	sb.WriteString(sign)
	if hours > 0 {
		fmt.Fprintf(&sb, "%dh", hours)
	}

	if minutes > 0 || hours == 0 {
		if hours > 0 {
			sb.WriteString(" ")
		}

		fmt.Fprintf(&sb, "%dm", minutes)
	}

	return sb.String()
}

func DurationHMS(d time.Duration) string {
	sign, d := splitSign(d)
	hours := int(math.Floor(d.Hours()))
	d = d - (time.Duration(hours) * time.Hour)
	minutes := int(math.Floor(d.Minutes()))
	d = d - (time.Duration(minutes) * time.Minute)
	seconds := int(math.Floor(d.Seconds()))

	parts := []string{}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}

	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}

	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return sign + strings.Join(parts, " ")
}

func splitSign(d time.Duration) (string, time.Duration) {
	if d < 0 {
		return "-", -d
	}
	return "", d
}

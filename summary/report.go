package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/sporadisk/testclock/format"
)

type LineKind int

const (
	KindTotal LineKind = iota
	KindInfo
	KindHeading
	KindDetail
	KindFloat
	KindSkip
)

type Line struct {
	Kind     LineKind
	Text     string
	Negative bool // set on a float line that misses its target
}

// Report lists the totals, one line per processed file, the float time when
// a target was given and every skipped file with its reason.
func (s Summary) Report(fmtDuration func(time.Duration) string) []Line {
	if fmtDuration == nil {
		fmtDuration = format.Clock
	}

	agg := s.Aggregate
	lines := []Line{
		{Kind: KindTotal, Text: "Total test time: " + fmtDuration(agg.Total)},
		{Kind: KindInfo, Text: fmt.Sprintf("Number of CSV files: %d", agg.Processed)},
		{Kind: KindInfo, Text: fmt.Sprintf("Skipped files: %d", len(agg.Skipped))},
	}

	if len(agg.Details) > 0 {
		lines = append(lines, Line{Kind: KindHeading, Text: "Individual test times:"})
		for i, d := range agg.Details {
			lines = append(lines, Line{
				Kind: KindDetail,
				Text: fmt.Sprintf("[%d] %s - Start Time: %s, End Time: %s, Test Time: %s",
					i+1, d.Source, detailTime(d.Start, d.Dated), detailTime(d.End, d.Dated), fmtDuration(d.Duration)),
			})
		}
	}

	if s.TotalWorkTime != nil {
		lines = append(lines, Line{Kind: KindInfo, Text: "Total work time: " + fmtDuration(*s.TotalWorkTime)})
	}

	if s.Float != nil {
		f := s.Float
		lines = append(lines, Line{
			Kind:     KindFloat,
			Text:     "Float time: " + fmtDuration(f.Float),
			Negative: f.Float < 0,
		})
		lines = append(lines, Line{Kind: KindInfo, Text: floatBasis(f, fmtDuration)})
	}

	if len(agg.Skipped) > 0 {
		lines = append(lines, Line{Kind: KindHeading, Text: "Skipped:"})
		for i, sk := range agg.Skipped {
			lines = append(lines, Line{
				Kind: KindSkip,
				Text: fmt.Sprintf(" %d - %s: %s", i+1, sk.Source, sk.Reason),
			})
		}
	}

	return lines
}

func floatBasis(f *FloatResult, fmtDuration func(time.Duration) string) string {
	label := "Completion time"
	if f.Mode == ModeStart {
		label = "Start time"
	}

	ref := format.Timestamp(f.Reference)
	if f.RefSource == RefEndOfDay {
		ref = "24:00:00"
	}

	return fmt.Sprintf("%s %s, %s %s, window %s, projected finish %s",
		label, format.Timestamp(f.Target), f.RefSource, ref,
		fmtDuration(f.Window), format.Timestamp(f.Finish))
}

func detailTime(ts time.Time, dated bool) string {
	if dated {
		return ts.Format("2006-01-02 15:04:05")
	}
	return format.Timestamp(ts)
}

// Text joins the report lines, one per line.
func Text(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.Text + "\n")
	}
	return sb.String()
}

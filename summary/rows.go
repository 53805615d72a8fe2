package summary

import "github.com/sporadisk/testclock/format"

var (
	SummaryHeader = []string{"Total Test Time", "Total Work Time", "Float Time"}
	DetailHeader  = []string{"File", "Test Time"}
)

// Rows is the CSV export: the summary header and row, then the detail header
// and one row per processed file. Absent values are empty cells.
func (s Summary) Rows() [][]string {
	workTime := ""
	if s.TotalWorkTime != nil {
		workTime = format.Clock(*s.TotalWorkTime)
	}

	floatTime := ""
	if s.Float != nil {
		floatTime = format.Clock(s.Float.Float)
	}

	rows := [][]string{
		SummaryHeader,
		{format.Clock(s.Aggregate.Total), workTime, floatTime},
		DetailHeader,
	}

	for _, d := range s.Aggregate.Details {
		rows = append(rows, []string{d.Source, format.Clock(d.Duration)})
	}

	return rows
}

package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sporadisk/testclock/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputSummary(t *testing.T) {
	dir := t.TempDir()
	c := &Client{
		TextPath: filepath.Join(dir, "total_test_time.txt"),
		CSVPath:  filepath.Join(dir, "test_times.csv"),
		Log:      log.New(io.Discard),
	}
	require.NoError(t, c.Init())

	workTime := 8 * time.Hour
	sum := summary.Build(summary.AggregateResult{
		Total:     105 * time.Minute,
		Processed: 2,
		Details: []summary.Detail{
			{Source: "a.csv", Duration: 90 * time.Minute},
			{Source: "b.csv", Duration: 15 * time.Minute},
		},
	}, &summary.FloatResult{Mode: summary.ModeCompletion, Float: 135 * time.Minute}, &workTime)

	require.NoError(t, c.OutputSummary(sum))

	text, err := os.ReadFile(c.TextPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(text), "Total test time: 01:45:00\n"))
	assert.Contains(t, string(text), "Float time: 02:15:00\n")

	f, err := os.Open(c.CSVPath)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Total Test Time", "Total Work Time", "Float Time"},
		{"01:45:00", "08:00:00", "02:15:00"},
		{"File", "Test Time"},
		{"a.csv", "01:30:00"},
		{"b.csv", "00:15:00"},
	}, rows)
}

func TestInitRequiresPaths(t *testing.T) {
	c := &Client{TextPath: "out.txt"}
	assert.Error(t, c.Init())
}

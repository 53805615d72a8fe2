package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/summary"
)

// Client writes the report text and the CSV export to flat files.
type Client struct {
	TextPath string
	CSVPath  string
	Log      *log.Logger
}

func (c *Client) Init() error {
	if c.TextPath == "" || c.CSVPath == "" {
		return fmt.Errorf("both a text and a CSV output path are required")
	}

	if c.Log == nil {
		c.Log = log.Default()
	}
	return nil
}

func (c *Client) OutputSummary(sum summary.Summary) error {
	err := c.writeText(sum)
	if err != nil {
		return fmt.Errorf("writeText: %w", err)
	}

	err = c.writeCSV(sum)
	if err != nil {
		return fmt.Errorf("writeCSV: %w", err)
	}

	c.Log.Info("result saved", "run", sum.RunID, "text", absPath(c.TextPath), "csv", absPath(c.CSVPath))
	return nil
}

func (c *Client) writeText(sum summary.Summary) error {
	text := summary.Text(sum.Report(format.Clock))

	err := os.WriteFile(c.TextPath, []byte(text), 0o644)
	if err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}
	return nil
}

func (c *Client) writeCSV(sum summary.Summary) error {
	f, err := os.Create(c.CSVPath)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	err = w.WriteAll(sum.Rows())
	if err != nil {
		return fmt.Errorf("csv.Writer.WriteAll: %w", err)
	}

	return f.Close()
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/summary"
)

func (c *Client) OutputSummary(sum summary.Summary) error {
	_, err := fmt.Fprint(c.Out, c.Summary(sum))
	if err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

func (c *Client) Summary(sum summary.Summary) string {
	var sb strings.Builder

	sb.WriteString("\n" + c.styles.title.Render("- Test time summary / "+format.Timestamp(time.Now())+" -") + "\n")

	for _, line := range sum.Report(c.formatDuration) {
		sb.WriteString(c.styleLine(line) + "\n")
	}

	return sb.String()
}

func (c *Client) styleLine(line summary.Line) string {
	switch line.Kind {
	case summary.KindTotal:
		return c.styles.total.Render(line.Text)
	case summary.KindHeading:
		return c.styles.heading.Render(line.Text)
	case summary.KindFloat:
		if line.Negative {
			return c.styles.negative.Render(line.Text)
		}
		return c.styles.positive.Render(line.Text)
	case summary.KindSkip:
		return c.styles.skip.Render(line.Text)
	default:
		return line.Text
	}
}

func (c *Client) formatDuration(d time.Duration) string {
	return format.Duration(d, c.TimeFormat)
}

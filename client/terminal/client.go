package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/sporadisk/testclock/format"
)

type Client struct {
	TimeFormat string
	Out        io.Writer

	styles styles
}

type styles struct {
	title    lipgloss.Style
	total    lipgloss.Style
	heading  lipgloss.Style
	negative lipgloss.Style
	positive lipgloss.Style
	skip     lipgloss.Style
}

func (c *Client) Init() error {
	if c.TimeFormat == "" {
		c.TimeFormat = format.TimeClock
	}

	err := format.ValidateTimeFormat(c.TimeFormat)
	if err != nil {
		return fmt.Errorf("ValidateTimeFormat: %w", err)
	}

	if c.Out == nil {
		c.Out = os.Stdout
	}

	c.styles = styles{
		title:    lipgloss.NewStyle().Bold(true),
		total:    lipgloss.NewStyle().Bold(true),
		heading:  lipgloss.NewStyle().Underline(true),
		negative: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		positive: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		skip:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
	return nil
}

package calculator

import (
	"fmt"

	"github.com/sporadisk/testclock/client/report"
	"github.com/sporadisk/testclock/client/terminal"
	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/parameter"
)

const (
	outputTerminal = "terminal"
	outputNone     = "none"
)

// LoadSummaryOutput sets up the console output named in the config and the
// file export, which is always written.
func (c *Calculator) LoadSummaryOutput() error {
	name := outputTerminal
	if c.Conf.Output != nil && c.Conf.Output.Name != "" {
		validName, err := parameter.Validate(c.Conf.Output.Name, []string{outputTerminal, outputNone})
		if err != nil {
			return fmt.Errorf("validation failure for output name: %w", err)
		}
		name = validName
	}

	if name == outputTerminal {
		err := c.LoadTerminalOutput()
		if err != nil {
			return fmt.Errorf("LoadTerminalOutput: %w", err)
		}
	}

	return c.LoadReportOutput()
}

func (c *Calculator) LoadTerminalOutput() error {
	defaultTimeFormat := format.TimeClock
	if tf, ok := c.Conf.OutputParam("timeFormat"); ok {
		defaultTimeFormat = format.CleanParam(tf)
	}

	termClient := &terminal.Client{
		TimeFormat: defaultTimeFormat,
	}
	err := termClient.Init()
	if err != nil {
		return fmt.Errorf("terminal.Client.Init: %w", err)
	}

	c.SummaryOutputs = append(c.SummaryOutputs, termClient)
	return nil
}

func (c *Calculator) LoadReportOutput() error {
	reportClient := &report.Client{
		TextPath: c.Conf.TextFile(),
		CSVPath:  c.Conf.CSVFile(),
		Log:      c.Log,
	}
	err := reportClient.Init()
	if err != nil {
		return fmt.Errorf("report.Client.Init: %w", err)
	}

	c.SummaryOutputs = append(c.SummaryOutputs, reportClient)
	return nil
}

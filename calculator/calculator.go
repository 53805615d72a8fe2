package calculator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sporadisk/testclock/client/csvfile"
	"github.com/sporadisk/testclock/config"
	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/record"
	"github.com/sporadisk/testclock/summary"
)

type Calculator struct {
	Conf           *config.Config
	Extractor      Extractor
	Subscriber     record.Subscriber
	SummaryOutputs []summary.Output
	Target         Target
	TotalWorkTime  *time.Duration
	Log            *log.Logger
}

func (c *Calculator) Start(ctx context.Context) error {
	err := c.Init()
	if err != nil {
		return fmt.Errorf("c.Init: %w", err)
	}

	err = c.Subscriber.Subscribe(ctx, c)
	if err != nil {
		return fmt.Errorf("Subscriber.Subscribe: %w", err)
	}
	return nil
}

// Init fills in everything not set by the caller from the config.
func (c *Calculator) Init() error {
	if c.Conf == nil {
		c.Conf = &config.Config{}
	}

	if c.Log == nil {
		c.Log = log.Default()
	}

	if c.Extractor == nil {
		ex, err := csvfile.NewExtractor()
		if err != nil {
			return fmt.Errorf("csvfile.NewExtractor: %w", err)
		}
		c.Extractor = ex
	}

	err := c.getTarget()
	if err != nil {
		return fmt.Errorf("c.getTarget: %w", err)
	}

	err = c.getTotalWorkTime()
	if err != nil {
		return fmt.Errorf("c.getTotalWorkTime: %w", err)
	}

	if len(c.SummaryOutputs) == 0 {
		err = c.LoadSummaryOutput()
		if err != nil {
			return fmt.Errorf("LoadSummaryOutput: %w", err)
		}
	}

	return nil
}

func (c *Calculator) Receive(records []record.Raw) error {
	sum, err := c.Process(records)
	if err != nil {
		return fmt.Errorf("c.Process: %w", err)
	}

	for _, out := range c.SummaryOutputs {
		err = out.OutputSummary(sum)
		if err != nil {
			return fmt.Errorf("SummaryOutput.OutputSummary: %w", err)
		}
	}
	return nil
}

// Process turns one batch of records into a summary. It performs no I/O
// besides logging.
func (c *Calculator) Process(records []record.Raw) (summary.Summary, error) {
	agg := Aggregate(c.Extractor, records)

	var floatRes *summary.FloatResult
	if c.Target != nil {
		f, err := Float(agg.Total, agg.EarliestStart, c.Target)
		if err != nil {
			return summary.Summary{}, fmt.Errorf("Float: %w", err)
		}
		floatRes = &f
	}

	sum := summary.Build(agg, floatRes, c.TotalWorkTime)

	for _, sk := range agg.Skipped {
		c.Log.Warn("skipped file", "run", sum.RunID, "file", sk.Source, "reason", sk.Reason)
	}

	c.Log.Info("run complete",
		"run", sum.RunID,
		"processed", agg.Processed,
		"skipped", len(agg.Skipped),
		"total", format.Clock(agg.Total),
	)

	if floatRes != nil {
		c.Log.Debug("float computed", "run", sum.RunID, "mode", floatRes.Mode, "float", format.Clock(floatRes.Float))
	}

	return sum, nil
}

func (c *Calculator) getTarget() error {
	if c.Target != nil || !c.Conf.HasTarget() {
		return nil
	}

	tc := c.Conf.Target
	mode := tc.Mode
	if mode == "" {
		mode = summary.ModeCompletion
	}

	target, err := ParseTarget(mode, tc.Time, tc.Reference)
	if err != nil {
		return fmt.Errorf("ParseTarget: %w", err)
	}

	c.Target = target
	return nil
}

func (c *Calculator) getTotalWorkTime() error {
	if c.TotalWorkTime != nil || c.Conf.TotalWorkTime == "" {
		return nil
	}

	wt, err := format.ParseWorkTime(c.Conf.TotalWorkTime)
	if err != nil {
		return fmt.Errorf("parsing total work time: %w", err)
	}

	c.TotalWorkTime = &wt
	return nil
}

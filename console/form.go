package console

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/sporadisk/testclock/calculator"
	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/summary"
)

const modeSkip = "skip"

// PromptForm asks for the float target with an interactive form. Use it
// only when stdin is a terminal.
func (p *Prompter) PromptForm() (calculator.Target, error) {
	err := p.validateRefs()
	if err != nil {
		return nil, err
	}

	mode := summary.ModeCompletion
	var at string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Float time target").
				Options(
					huh.NewOption("Completion time", summary.ModeCompletion),
					huh.NewOption("Start time", summary.ModeStart),
					huh.NewOption("Skip", modeSkip),
				).
				Value(&mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Time").
				Description("HH:MM:SS or HHMM").
				Value(&at).
				Validate(func(s string) error {
					_, err := format.ParseTarget(s)
					return err
				}),
		).WithHideFunc(func() bool {
			return mode == modeSkip
		}),
	)

	err = form.Run()
	if err != nil {
		return nil, fmt.Errorf("form.Run: %w", err)
	}

	if mode == modeSkip {
		return nil, nil
	}

	ref := p.Anchor
	if mode == summary.ModeStart {
		ref = p.Deadline
	}

	return calculator.ParseTarget(mode, at, ref)
}

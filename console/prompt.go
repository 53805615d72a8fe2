package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sporadisk/testclock/calculator"
	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/summary"
)

const maxAttempts = 3

// Prompter asks the user for the float target. Anchor and Deadline are
// passed through to the target of the matching mode.
type Prompter struct {
	In       io.Reader
	Out      io.Writer
	Anchor   string
	Deadline string
}

type question struct {
	mode   string
	ref    string
	prompt string
}

// PromptLines asks for a completion time, then a start time. Pressing Enter
// skips a question; a nil target means both were skipped. Invalid times are
// asked again, up to three times.
func (p *Prompter) PromptLines() (calculator.Target, error) {
	err := p.validateRefs()
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(p.In)
	questions := []question{
		{summary.ModeCompletion, p.Anchor, "Enter completion time in HH:MM:SS or HHMM format (or press Enter to skip): "},
		{summary.ModeStart, p.Deadline, "Enter start time in HH:MM:SS or HHMM format (or press Enter to skip): "},
	}

	for _, q := range questions {
		target, err := p.ask(reader, q)
		if err != nil {
			return nil, err
		}
		if target != nil {
			return target, nil
		}
	}

	return nil, nil
}

func (p *Prompter) ask(reader *bufio.Reader, q question) (calculator.Target, error) {
	var lastErr error

	for i := 0; i < maxAttempts; i++ {
		fmt.Fprint(p.Out, q.prompt)
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("reading answer: %w", readErr)
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			return nil, nil
		}

		target, err := calculator.ParseTarget(q.mode, answer, q.ref)
		if err == nil {
			return target, nil
		}

		fmt.Fprintf(p.Out, "Error: %s\n", err.Error())
		lastErr = err

		if readErr != nil {
			break
		}
	}

	return nil, lastErr
}

func (p *Prompter) validateRefs() error {
	for _, ref := range []string{p.Anchor, p.Deadline} {
		if ref == "" {
			continue
		}
		_, err := format.ParseTarget(ref)
		if err != nil {
			return err
		}
	}
	return nil
}

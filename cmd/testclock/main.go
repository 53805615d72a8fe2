package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		var inputErr *inputError
		if errors.As(err, &inputErr) {
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}

		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())

		os.Exit(1)
		return
	}
}

// inputError marks errors caused by invalid command line input, which are
// followed by the usage text.
type inputError struct {
	err error
}

func (e *inputError) Error() string {
	return e.err.Error()
}

func (e *inputError) Unwrap() error {
	return e.err
}

func invalidInput(format string, v ...any) error {
	return &inputError{err: fmt.Errorf(format, v...)}
}

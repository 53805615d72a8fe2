package record

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractionErrorMessage(t *testing.T) {
	err := &ExtractionError{Source: "run1.csv", Label: LabelEnd, Reason: "not found"}
	assert.Equal(t, `run1.csv: "Test End Time" not found`, err.Error())

	inner := errors.New("permission denied")
	err = &ExtractionError{Source: "run2.csv", Err: inner}
	assert.Equal(t, "run2.csv: permission denied", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestExtractionErrorDetail(t *testing.T) {
	err := &ExtractionError{
		Source: "run3.csv",
		Label:  LabelStart,
		Reason: `value "25:99:00" is not a valid time`,
		Err:    errors.New("hour value out of range: 25 (expected 0-23)"),
	}

	assert.Equal(t, `"Test Start Time" value "25:99:00" is not a valid time: hour value out of range: 25 (expected 0-23)`, err.Detail())
}

package csvfile

import (
	"fmt"
	"regexp"

	"github.com/sporadisk/testclock/record"
)

// A label may be followed by any run of delimiters, an optional mm/dd/yyyy
// date and the HH:MM:SS value. The value must end at a non-digit, non-colon
// character or at the end of the text.
const (
	labelPatternRegex = `(?i)%s`
	valuePatternRegex = `(?i)%s[\s:,;=|"']*(?:(\d{1,2})/(\d{1,2})/(\d{4})\s+)?(\d{2}:\d{2}:\d{2})(?:[^\d:]|$)`
)

// Extractor finds the labeled start and end times in the text of one row.
type Extractor struct {
	startLabel   *regexp.Regexp
	startPattern *regexp.Regexp
	endLabel     *regexp.Regexp
	endPattern   *regexp.Regexp
}

func NewExtractor() (*Extractor, error) {
	e := &Extractor{}
	err := e.Init()
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Extractor) Init() error {
	var err error

	e.startLabel, e.startPattern, err = compileLabel(record.LabelStart)
	if err != nil {
		return fmt.Errorf("failed to compile start pattern: %w", err)
	}

	e.endLabel, e.endPattern, err = compileLabel(record.LabelEnd)
	if err != nil {
		return fmt.Errorf("failed to compile end pattern: %w", err)
	}

	return nil
}

func compileLabel(label string) (labelPattern, valuePattern *regexp.Regexp, err error) {
	quoted := regexp.QuoteMeta(label)

	labelPattern, err = regexp.Compile(fmt.Sprintf(labelPatternRegex, quoted))
	if err != nil {
		return nil, nil, err
	}

	valuePattern, err = regexp.Compile(fmt.Sprintf(valuePatternRegex, quoted))
	if err != nil {
		return nil, nil, err
	}

	return labelPattern, valuePattern, nil
}

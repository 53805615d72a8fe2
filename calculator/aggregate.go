package calculator

import (
	"errors"

	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/record"
	"github.com/sporadisk/testclock/summary"
)

type Extractor interface {
	Extract(raw record.Raw) (record.TimePair, error)
}

// Aggregator sums the durations of test runs. A run that fails is recorded
// as skipped and does not stop the others.
type Aggregator struct {
	result summary.AggregateResult
}

// Aggregate extracts and sums every record in order.
func Aggregate(ex Extractor, records []record.Raw) summary.AggregateResult {
	agg := &Aggregator{}

	for _, raw := range records {
		pair, err := ex.Extract(raw)
		if err != nil {
			agg.Skip(raw.Source, err)
			continue
		}

		// the error is already recorded as a skip
		_ = agg.Add(pair)
	}

	return agg.Result()
}

func (a *Aggregator) Add(pair record.TimePair) error {
	d, err := Duration(pair)
	if err != nil {
		a.Skip(pair.Source, err)
		return err
	}

	a.result.Total += d
	a.result.Processed++
	a.result.Details = append(a.result.Details, summary.Detail{
		Source:   pair.Source,
		Start:    pair.Start,
		End:      pair.End,
		Dated:    pair.Dated,
		Duration: d,
	})

	start := format.ClockOf(pair.Start)
	if a.result.EarliestStart == nil || start.Before(*a.result.EarliestStart) {
		a.result.EarliestStart = &start
	}

	return nil
}

func (a *Aggregator) Skip(source string, err error) {
	a.result.Skipped = append(a.result.Skipped, summary.Skip{
		Source: source,
		Reason: skipReason(err),
		Err:    err,
	})
}

func (a *Aggregator) Result() summary.AggregateResult {
	return a.result
}

func skipReason(err error) string {
	var extractionErr *record.ExtractionError
	if errors.As(err, &extractionErr) {
		return extractionErr.Detail()
	}
	return err.Error()
}

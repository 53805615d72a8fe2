package calculator_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sporadisk/testclock/calculator"
	"github.com/sporadisk/testclock/config"
	"github.com/sporadisk/testclock/format"
	"github.com/sporadisk/testclock/logger"
	"github.com/sporadisk/testclock/record"
	"github.com/sporadisk/testclock/summary"
)

func TestCalculate(t *testing.T) {
	tests := []*calcTest{
		newCalcTest("two runs, completion target", completion("12:00:00", "08:00:00"),
			run("08:00:00", "09:30:00"),
			run("10:00:00", "10:15:00"),
		).expectTotal("01:45:00").expectProcessed(2).expectFloat("02:15:00"),
		newCalcTest("behind schedule", completion("09:00:00", "08:00:00"),
			run("08:00:00", "09:30:00"),
			run("10:00:00", "10:15:00"),
		).expectTotal("01:45:00").expectFloat("-00:45:00"),
		newCalcTest("compact completion target", completion("1200", ""),
			run("08:00:00", "09:30:00"),
			run("10:00:00", "10:15:00"),
		).expectFloat("02:15:00"),
		newCalcTest("missing end time is skipped", nil,
			run("08:00:00", "09:30:00"),
			"Test Start Time: 10:00:00",
		).expectTotal("01:30:00").expectProcessed(1).expectSkipped(1).expectNoFloat(),
		newCalcTest("out of range end time is skipped", start("09:00:00", "17:00:00"),
			run("08:00:00", "09:30:00"),
			run("10:00:00", "25:99:00"),
		).expectTotal("01:30:00").expectSkipped(1).expectFloat("06:30:00"),
		newCalcTest("run across midnight", completion("0300", "00:00:00"),
			run("23:30:00", "01:15:00"),
		).expectTotal("01:45:00").expectFloat("01:15:00"),
		newCalcTest("target before earliest start", completion("0900", ""),
			run("10:00:00", "13:00:00"),
		).expectTotal("03:00:00").expectFloat("-04:00:00"),
		newCalcTest("totals beyond a day", nil,
			run("00:00:00", "23:00:00"),
			run("01:00:00", "04:00:00"),
		).expectTotal("26:00:00"),
		newCalcTest("nothing usable", completion("12:00:00", ""),
			"", "Test End Time: 10:00:00",
		).expectTotal("00:00:00").expectProcessed(0).expectSkipped(2).expectFloat("12:00:00"),
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			calc := &calculator.Calculator{
				Target:         test.target,
				Log:            logger.Discard(),
				SummaryOutputs: []summary.Output{&captureOutput{}},
			}
			err := calc.Init()
			if err != nil {
				t.Errorf("calc.Init: %s", err.Error())
				return
			}

			sum, err := calc.Process(test.records)
			if err != nil {
				t.Errorf("calc.Process: %s", err.Error())
				return
			}

			if test.wantTotal != nil && *test.wantTotal != sum.Aggregate.Total {
				t.Errorf("total mismatch: expected %s, got %s", format.Clock(*test.wantTotal), format.Clock(sum.Aggregate.Total))
			}

			if test.processed >= 0 && test.processed != sum.Aggregate.Processed {
				t.Errorf("processed mismatch: expected %d, got %d", test.processed, sum.Aggregate.Processed)
			}

			if test.skipped != len(sum.Aggregate.Skipped) {
				t.Errorf("skipped mismatch: expected %d, got %d", test.skipped, len(sum.Aggregate.Skipped))
			}

			if test.noFloat {
				if sum.Float != nil {
					t.Errorf("expected no float, got %s", format.Clock(sum.Float.Float))
				}
				return
			}

			if test.wantFloat != nil {
				if sum.Float == nil {
					t.Errorf("expected a float, but did not get one")
					return
				}
				if *test.wantFloat != sum.Float.Float {
					t.Errorf("float mismatch: expected %s, got %s", format.Clock(*test.wantFloat), format.Clock(sum.Float.Float))
				}
			}
		})
	}
}

func TestReceive(t *testing.T) {
	out := &captureOutput{}
	calc := &calculator.Calculator{
		Log:            logger.Discard(),
		SummaryOutputs: []summary.Output{out},
	}
	if err := calc.Init(); err != nil {
		t.Fatalf("calc.Init: %s", err.Error())
	}

	err := calc.Receive([]record.Raw{{Source: "a.csv", Text: run("08:00:00", "09:00:00")}})
	if err != nil {
		t.Fatalf("calc.Receive: %s", err.Error())
	}

	if len(out.summaries) != 1 {
		t.Fatalf("expected one summary, got %d", len(out.summaries))
	}

	failing := &calculator.Calculator{
		Log:            logger.Discard(),
		SummaryOutputs: []summary.Output{&captureOutput{err: errors.New("disk full")}},
	}
	if err := failing.Init(); err != nil {
		t.Fatalf("failing.Init: %s", err.Error())
	}
	if err := failing.Receive(nil); err == nil {
		t.Errorf("expected the output error to be returned")
	}
}

func TestInitFromConfig(t *testing.T) {
	dir := t.TempDir()
	calc := &calculator.Calculator{
		Conf: &config.Config{
			Target:        &config.TargetConfig{Mode: "start", Time: "0900", Reference: "1700"},
			TotalWorkTime: "7h 30m",
			Output:        &config.OutputConfig{Name: "none"},
			Export: &config.ExportConfig{
				TextFile: filepath.Join(dir, "total.txt"),
				CSVFile:  filepath.Join(dir, "times.csv"),
			},
		},
		Log: logger.Discard(),
	}

	err := calc.Init()
	if err != nil {
		t.Fatalf("calc.Init: %s", err.Error())
	}

	if _, ok := calc.Target.(calculator.StartTarget); !ok {
		t.Errorf("expected a start target, got %T", calc.Target)
	}

	if calc.TotalWorkTime == nil || *calc.TotalWorkTime != 450*time.Minute {
		t.Errorf("total work time not loaded from config")
	}

	if len(calc.SummaryOutputs) != 1 {
		t.Fatalf("expected only the file export, got %d outputs", len(calc.SummaryOutputs))
	}

	err = calc.Receive([]record.Raw{{Source: "a.csv", Text: run("09:00:00", "10:45:00")}})
	if err != nil {
		t.Fatalf("calc.Receive: %s", err.Error())
	}

	data, err := os.ReadFile(filepath.Join(dir, "times.csv"))
	if err != nil {
		t.Fatalf("reading export: %s", err.Error())
	}

	want := "Total Test Time,Total Work Time,Float Time\n01:45:00,07:30:00,06:15:00\nFile,Test Time\na.csv,01:45:00\n"
	if string(data) != want {
		t.Errorf("export mismatch!\nExpected: %q\nGot     : %q", want, string(data))
	}
}

func TestInitBadConfig(t *testing.T) {
	bad := []*config.Config{
		{Target: &config.TargetConfig{Time: "noon"}},
		{TotalWorkTime: "a while"},
		{Output: &config.OutputConfig{Name: "printer"}},
		{Output: &config.OutputConfig{Params: map[string]string{"timeFormat": "weeks"}}},
	}

	for i, conf := range bad {
		calc := &calculator.Calculator{Conf: conf, Log: logger.Discard()}
		if err := calc.Init(); err == nil {
			t.Errorf("config %d: expected an error", i)
		}
	}
}

type captureOutput struct {
	summaries []summary.Summary
	err       error
}

func (c *captureOutput) OutputSummary(sum summary.Summary) error {
	c.summaries = append(c.summaries, sum)
	return c.err
}

type calcTest struct {
	name      string
	target    calculator.Target
	records   []record.Raw
	wantTotal *time.Duration
	wantFloat *time.Duration
	noFloat   bool
	processed int
	skipped   int
}

func newCalcTest(name string, target calculator.Target, rows ...string) *calcTest {
	ct := &calcTest{
		name:      name,
		target:    target,
		processed: -1,
	}
	for i, r := range rows {
		ct.records = append(ct.records, record.Raw{Source: fmt.Sprintf("run%d.csv", i+1), Text: r})
	}
	return ct
}

func run(start, end string) string {
	return fmt.Sprintf(`"Serial","A1","Test Start Time","%s","Test End Time","%s","PASS"`, start, end)
}

func completion(at, anchor string) calculator.Target {
	target, err := calculator.ParseTarget("completion", at, anchor)
	if err != nil {
		log.Panicf(`failed to parse target "%s": %s`, at, err.Error())
	}
	return target
}

func start(at, deadline string) calculator.Target {
	target, err := calculator.ParseTarget("start", at, deadline)
	if err != nil {
		log.Panicf(`failed to parse target "%s": %s`, at, err.Error())
	}
	return target
}

func (ct *calcTest) expectTotal(d string) *calcTest {
	ct.wantTotal = mustClockDuration(d)
	return ct
}

func (ct *calcTest) expectFloat(d string) *calcTest {
	ct.wantFloat = mustClockDuration(d)
	return ct
}

func (ct *calcTest) expectNoFloat() *calcTest {
	ct.noFloat = true
	return ct
}

func (ct *calcTest) expectProcessed(n int) *calcTest {
	ct.processed = n
	return ct
}

func (ct *calcTest) expectSkipped(n int) *calcTest {
	ct.skipped = n
	return ct
}

// mustClockDuration parses a signed HH:MM:SS duration
func mustClockDuration(d string) *time.Duration {
	sign := time.Duration(1)
	if d[0] == '-' {
		sign = -1
		d = d[1:]
	}

	dur, err := format.ParseWorkTime(d)
	if err != nil {
		log.Panicf(`failed to parse duration string "%s": %s`, d, err.Error())
	}
	dur *= sign
	return &dur
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sporadisk/testclock/calculator"
	"github.com/sporadisk/testclock/client/csvfile"
	"github.com/sporadisk/testclock/config"
	"github.com/sporadisk/testclock/console"
	"github.com/sporadisk/testclock/logger"
)

type options struct {
	configPath string
	pattern    string
	completion string
	start      string
	anchor     string
	deadline   string
	workTime   string
	textOut    string
	csvOut     string
	timeFormat string
	logLevel   string
	logFile    string
	noPrompt   bool
	watch      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "testclock [dir]",
		Short: "Sum test run durations from CSV files and compute float time",
		Long: `testclock reads every CSV file in a directory, takes the "Test Start Time"
and "Test End Time" of each run, and reports the total test time, the float
time against a completion or start time, and a CSV export of both.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.Flags(), opts, args)
		},
	}

	bindFlags(cmd.Flags(), opts)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.configPath, "config", "", "path to a YAML config file (default "+config.DefaultPath+" if present)")
	fs.StringVar(&o.pattern, "pattern", "", "file name pattern of the input files (default "+csvfile.DefaultPattern+")")
	fs.StringVar(&o.completion, "completion", "", "target completion time, HH:MM:SS or HHMM")
	fs.StringVar(&o.start, "start", "", "start time, HH:MM:SS or HHMM")
	fs.StringVar(&o.anchor, "anchor", "", "time the work is counted from in completion mode (default: earliest recorded start)")
	fs.StringVar(&o.deadline, "deadline", "", "end of the available window in start mode (default: end of day)")
	fs.StringVar(&o.workTime, "work-time", "", "total work time to include in the summary, H:MM:SS or e.g. 7h30m")
	fs.StringVar(&o.textOut, "text-out", "", "report output file (default "+config.DefaultTextFile+")")
	fs.StringVar(&o.csvOut, "csv-out", "", "CSV output file (default "+config.DefaultCSVFile+")")
	fs.StringVar(&o.timeFormat, "time-format", "", "console duration format: clock, hms, hm or m")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&o.logFile, "log-file", "", "also write logs to this rotating file")
	fs.BoolVar(&o.noPrompt, "no-prompt", false, "never ask for a target time")
	fs.BoolVar(&o.watch, "watch", false, "keep running and recalculate when the directory changes")
}

func run(ctx context.Context, fs *pflag.FlagSet, opts *options, args []string) error {
	if opts.completion != "" && opts.start != "" {
		return invalidInput("--completion and --start cannot be used together")
	}

	conf, err := config.Load(opts.configPath)
	if err != nil {
		return invalidInput("config.Load: %w", err)
	}

	applyFlags(conf, fs, opts)

	dir := conf.Dir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		dir = "."
	}

	l, err := newLogger(conf)
	if err != nil {
		return invalidInput("logger.New: %w", err)
	}

	calc := &calculator.Calculator{
		Conf: conf,
		Log:  l,
	}

	if !conf.HasTarget() && !opts.noPrompt {
		target, err := promptTarget(opts)
		if err != nil {
			return fmt.Errorf("promptTarget: %w", err)
		}
		calc.Target = target
	}

	subscriber, err := csvfile.NewSubscriber(dir)
	if err != nil {
		return invalidInput("csvfile.NewSubscriber: %w", err)
	}
	subscriber.Watch = opts.watch
	subscriber.Log = l
	subscriber.Exclude = []string{conf.TextFile(), conf.CSVFile()}
	if conf.Pattern != "" {
		subscriber.Pattern = conf.Pattern
	}
	calc.Subscriber = subscriber

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = calc.Start(ctx)
	if err != nil {
		return fmt.Errorf("calc.Start: %w", err)
	}

	return nil
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(conf *config.Config, fs *pflag.FlagSet, opts *options) {
	switch {
	case opts.completion != "":
		conf.Target = &config.TargetConfig{Mode: "completion", Time: opts.completion, Reference: opts.anchor}
	case opts.start != "":
		conf.Target = &config.TargetConfig{Mode: "start", Time: opts.start, Reference: opts.deadline}
	case conf.Target != nil:
		if fs.Changed("anchor") && conf.Target.Mode != "start" {
			conf.Target.Reference = opts.anchor
		}
		if fs.Changed("deadline") && conf.Target.Mode == "start" {
			conf.Target.Reference = opts.deadline
		}
	}

	if fs.Changed("work-time") {
		conf.TotalWorkTime = opts.workTime
	}

	if fs.Changed("pattern") {
		conf.Pattern = opts.pattern
	}

	if fs.Changed("text-out") || fs.Changed("csv-out") {
		if conf.Export == nil {
			conf.Export = &config.ExportConfig{}
		}
		if opts.textOut != "" {
			conf.Export.TextFile = opts.textOut
		}
		if opts.csvOut != "" {
			conf.Export.CSVFile = opts.csvOut
		}
	}

	if fs.Changed("time-format") {
		if conf.Output == nil {
			conf.Output = &config.OutputConfig{}
		}
		if conf.Output.Params == nil {
			conf.Output.Params = map[string]string{}
		}
		conf.Output.Params["timeFormat"] = opts.timeFormat
	}

	if fs.Changed("log-level") || fs.Changed("log-file") {
		if conf.Log == nil {
			conf.Log = &config.LogConfig{}
		}
		if opts.logLevel != "" {
			conf.Log.Level = opts.logLevel
		}
		if opts.logFile != "" {
			conf.Log.File = opts.logFile
		}
	}
}

func newLogger(conf *config.Config) (*log.Logger, error) {
	cfg := logger.Config{}
	if conf.Log != nil {
		cfg.Level = conf.Log.Level
		cfg.File = conf.Log.File
	}
	return logger.New(cfg)
}

func promptTarget(opts *options) (calculator.Target, error) {
	p := &console.Prompter{
		In:       os.Stdin,
		Out:      os.Stdout,
		Anchor:   opts.anchor,
		Deadline: opts.deadline,
	}

	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return p.PromptForm()
	}
	return p.PromptLines()
}

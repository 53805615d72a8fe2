package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	Level string // debug, info, warn, error; defaults to info
	File  string // optional rotating log file
	Out   io.Writer
}

// New creates a logger writing to Out (stderr by default) and, when File is
// set, to a rotating log file as well.
func New(cfg Config) (*log.Logger, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log.ParseLevel: %w", err)
		}
		level = parsed
	}

	var writer io.Writer = os.Stderr
	if cfg.Out != nil {
		writer = cfg.Out
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll: %w", err)
		}

		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		writer = io.MultiWriter(writer, fileWriter)
	}

	return log.NewWithOptions(writer, log.Options{
		ReportCaller:    level == log.DebugLevel,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "testclock",
	}), nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

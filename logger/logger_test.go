package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Out: &buf})
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, l.GetLevel())

	l.Debug("hidden")
	l.Info("run complete", "processed", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "run complete")
	assert.Contains(t, buf.String(), "processed=2")
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "testclock.log")

	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", File: path, Out: &buf})
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, l.GetLevel())

	l.Warn("skipped file", "file", "c.csv")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "skipped file")
	assert.Contains(t, buf.String(), "skipped file")
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

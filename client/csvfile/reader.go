package csvfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sporadisk/testclock/record"
)

const DefaultPattern = "*.csv"

// ReadDir reads every file in dir whose name matches pattern, in name order.
// Paths listed in exclude are left out. Files that cannot be read are
// returned with Err set so the caller can report them.
func ReadDir(dir, pattern string, exclude []string) ([]record.Raw, error) {
	return readDir(dir, pattern, exclude, 0)
}

func readDir(dir, pattern string, exclude []string, retries int) ([]record.Raw, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	_, err := filepath.Match(pattern, "")
	if err != nil {
		return nil, fmt.Errorf("filepath.Match: %w", err)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir: %w", err)
	}

	excluded := absPaths(exclude)
	records := []record.Raw{}

	for _, de := range dirEntries {
		if de.IsDir() || !matchName(pattern, de.Name()) {
			continue
		}

		path := filepath.Join(dir, de.Name())
		if excluded[absPath(path)] {
			continue
		}

		b, err := readLoop(path, retries)
		records = append(records, record.Raw{
			Source: de.Name(),
			Text:   decode(b),
			Err:    err,
		})
	}

	return records, nil
}

// Patterns match case-insensitively, exports tend to use ".CSV".
func matchName(pattern, name string) bool {
	ok, _ := filepath.Match(strings.ToLower(pattern), strings.ToLower(name))
	return ok
}

func decode(b []byte) string {
	s := strings.TrimPrefix(string(b), "\ufeff")
	return strings.ToValidUTF8(s, "\ufffd")
}

// readLoop retries a file that reads as empty, which happens when it is
// read while still being written.
func readLoop(path string, retries int) ([]byte, error) {
	for i := 0; ; i++ {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile: %w", err)
		}

		if len(b) > 0 || i >= retries {
			return b, nil
		}

		time.Sleep(time.Millisecond * 100)
	}
}

func absPaths(paths []string) map[string]bool {
	m := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		m[absPath(p)] = true
	}
	return m
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

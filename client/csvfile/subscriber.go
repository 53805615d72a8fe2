package csvfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/sporadisk/testclock/record"
)

const (
	minRunInterval = time.Second
	watchRetries   = 10
)

// Subscriber delivers the CSV files of a directory to a receiver, once or
// every time the directory changes.
type Subscriber struct {
	Dir     string
	Pattern string
	Exclude []string
	Watch   bool
	Log     *log.Logger

	lastRead time.Time
	receiver record.Receiver
}

func NewSubscriber(dir string) (*Subscriber, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("os.Stat: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	return &Subscriber{
		Dir:     dir,
		Pattern: DefaultPattern,
		Log:     log.Default(),
	}, nil
}

func (s *Subscriber) Subscribe(ctx context.Context, receiver record.Receiver) error {
	s.receiver = receiver

	err := s.deliver(0)
	if err != nil {
		return fmt.Errorf("s.deliver: %w", err)
	}

	if !s.Watch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	err = watcher.Add(s.Dir)
	if err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}

	s.Log.Info("watching for changes", "dir", s.Dir, "pattern", s.Pattern)
	return s.watchResponder(ctx, watcher)
}

func (s *Subscriber) watchResponder(ctx context.Context, watcher *fsnotify.Watcher) error {
	// a change that arrives too soon after the last run is picked up by rerun
	var rerun <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher.Events closed")
			}
			if !s.relevant(event) {
				continue
			}

			s.Log.Debug("change detected", "file", filepath.Base(event.Name), "op", event.Op.String())
			wait := minRunInterval - time.Since(s.lastRead)
			if wait > 0 {
				if rerun == nil {
					rerun = time.After(wait)
				}
				continue
			}
			s.react()

		case <-rerun:
			rerun = nil
			s.react()

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher.Errors closed")
			}
			s.Log.Warn("watcher error", "err", err)
		}
	}
}

func (s *Subscriber) react() {
	err := s.deliver(watchRetries)
	if err != nil {
		s.Log.Error("could not process directory", "dir", s.Dir, "err", err)
	}
}

func (s *Subscriber) deliver(retries int) error {
	s.lastRead = time.Now()

	records, err := readDir(s.Dir, s.Pattern, s.Exclude, retries)
	if err != nil {
		return fmt.Errorf("readDir: %w", err)
	}

	err = s.receiver.Receive(records)
	if err != nil {
		return fmt.Errorf("error from record receiver: %w", err)
	}

	return nil
}

func (s *Subscriber) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	pattern := s.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	if !matchName(pattern, filepath.Base(event.Name)) {
		return false
	}

	return !absPaths(s.Exclude)[absPath(event.Name)]
}

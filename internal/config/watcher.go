// ABOUTME: Polling file watcher used to hot-reload the canned responses file
// ABOUTME: Compares mtimes at a fixed interval until the context is cancelled

package config

import (
	"context"
	"os"
	"time"
)

// DefaultWatchInterval is how often watched files are polled.
const DefaultWatchInterval = 2 * time.Second

// Watcher reports changes to a set of files by polling their mtimes.
type Watcher struct {
	paths    []string
	interval time.Duration
	mtimes   map[string]time.Time
}

// NewWatcher creates a watcher over paths. A non-positive interval selects
// DefaultWatchInterval.
func NewWatcher(interval time.Duration, paths ...string) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	w := &Watcher{paths: paths, interval: interval, mtimes: make(map[string]time.Time)}
	w.snapshot()
	return w
}

// Run calls onChange after every poll that sees a modified, created or
// removed file. It blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.Changed() {
				onChange()
			}
		}
	}
}

// Changed reports whether any file differs from the last snapshot and
// takes a new snapshot when it does.
func (w *Watcher) Changed() bool {
	if !w.differs() {
		return false
	}
	w.snapshot()
	return true
}

func (w *Watcher) differs() bool {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			if _, existed := w.mtimes[path]; existed {
				return true
			}
			continue
		}
		prev, ok := w.mtimes[path]
		if !ok || !info.ModTime().Equal(prev) {
			return true
		}
	}
	return false
}

func (w *Watcher) snapshot() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces the bursts of events editors produce on save.
const debounceInterval = 100 * time.Millisecond

// fileWatcher reports changes to a fixed set of files. It watches their
// directories so that files replaced by rename are still seen.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	logger  *slog.Logger
}

func newFileWatcher(files []string, logger *slog.Logger) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &fileWatcher{
		watcher: watcher,
		files:   make(map[string]bool, len(files)),
		logger:  logger,
	}
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			_ = watcher.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run calls onChange after each burst of writes to the watched files until
// ctx is done.
func (w *fileWatcher) Run(ctx context.Context, onChange func()) error {
	var (
		timer    *time.Timer
		debounce <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			w.logger.Debug("change detected", "file", event.Name, "op", event.Op.String())

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounceInterval)
			debounce = timer.C
		case <-debounce:
			debounce = nil
			onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}

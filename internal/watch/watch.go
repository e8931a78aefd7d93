// Package watch re-runs a callback when a file changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/logger"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc is called after the watched file settles.
type ChangeFunc func(path string) error

// FileWatcher watches a single file. The parent directory is watched so
// editors that save by rename are still seen.
type FileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange ChangeFunc

	mu    sync.Mutex
	timer *time.Timer
}

// New watches path and calls onChange after each settled change.
func New(path string, debounce time.Duration, onChange ChangeFunc) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", path)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FileWatcher{path: abs, watcher: w, debounce: debounce, onChange: onChange}, nil
}

// Run blocks, dispatching changes until ctx is done.
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.watcher.Close()
	log := logger.Named("watch")
	log.Infow("watching", "file", fw.path)

	for {
		select {
		case <-ctx.Done():
			fw.stopTimer()
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !fw.relevant(event) {
				continue
			}
			log.Debugw("change detected", "file", event.Name, "op", event.Op.String())
			fw.schedule()
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watcher error", "error", err)
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != fw.path {
		return false
	}
	if strings.HasSuffix(event.Name, "~") {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (fw *FileWatcher) schedule() {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		if err := fw.onChange(fw.path); err != nil {
			logger.Named("watch").Warnw("change handler failed", "file", fw.path, "error", err)
		}
	})
}

func (fw *FileWatcher) stopTimer() {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
}

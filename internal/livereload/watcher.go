package livereload

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/muurk/weighguide/internal/content"
	"github.com/muurk/weighguide/internal/logging"
	"go.uber.org/zap"
)

// DefaultDebounce collapses the burst of events editors produce on save.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads a content file into a Holder whenever it changes.
// A file that fails to load or validate is reported and the previous
// content stays in place.
type Watcher struct {
	path     string
	holder   *content.Holder
	debounce time.Duration

	// OnReload is called after every reload attempt with its outcome.
	OnReload func(err error)
}

// NewWatcher creates a watcher for path feeding holder.
func NewWatcher(path string, holder *content.Holder) *Watcher {
	return &Watcher{
		path:     path,
		holder:   holder,
		debounce: DefaultDebounce,
	}
}

// SetDebounce overrides DefaultDebounce.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run watches until ctx is cancelled.
//
// The parent directory is watched rather than the file itself, so that
// editors that save by writing a new file and renaming it are seen too.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", w.path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	logging.Info("Watching content file", zap.String("path", abs))

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() == nil {
					w.Reload()
				}
			})
			mu.Unlock()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logging.Warn("File watcher error", zap.Error(err))
		}
	}
}

// Reload loads the file once and swaps it in on success.
func (w *Watcher) Reload() error {
	store, err := content.Load(w.path)
	if err == nil {
		w.holder.Replace(store)
	}
	logging.LogContentReload(w.path, err)
	if w.OnReload != nil {
		w.OnReload(err)
	}
	return err
}

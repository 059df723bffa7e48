package theme

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a theme file and triggers hot-reload on change.
type Watcher struct {
	mu       sync.Mutex
	logger   *slog.Logger
	theme    *Theme
	fsw      *fsnotify.Watcher
	onChange func(*Theme)
	done     chan struct{}
	running  bool
}

// NewWatcher creates a watcher for the given theme.
func NewWatcher(theme *Theme, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		logger: logger,
		theme:  theme,
	}
}

// SetChangeCallback sets the callback invoked with the reloaded theme.
func (w *Watcher) SetChangeCallback(fn func(*Theme)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching the theme file for changes.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	if w.theme == nil || w.theme.IsDefault || w.theme.Path == "" {
		w.logger.Debug("not watching bundled theme (embedded)")
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory containing the file; editors replace files
	// rather than writing them in place.
	if err := fsw.Add(filepath.Dir(w.theme.Path)); err != nil {
		fsw.Close()
		return err
	}

	w.fsw = fsw
	w.done = make(chan struct{})
	w.running = true
	go w.watch(ctx)

	w.logger.Debug("theme watcher started", "path", w.theme.Path)
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch(ctx context.Context) {
	filename := filepath.Base(w.theme.Path)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)

		case <-ctx.Done():
			return

		case <-w.done:
			return
		}
	}
}

// reload re-reads the theme file. Parse failures keep the previous
// styles in place.
func (w *Watcher) reload() {
	w.mu.Lock()
	theme := w.theme
	callback := w.onChange
	w.mu.Unlock()

	changed, err := theme.Reload()
	if err != nil {
		w.logger.Warn("failed to reload theme", "path", theme.Path, "error", err)
		return
	}
	if changed {
		w.logger.Info("theme file changed, reloading", "path", theme.Path)
		if callback != nil {
			callback(theme)
		}
	}
}

// Stop stops watching the theme file.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false
	close(w.done)
	w.fsw.Close()
	w.logger.Debug("theme watcher stopped")
}

// IsRunning returns whether the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

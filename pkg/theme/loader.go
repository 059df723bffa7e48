package theme

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Loader resolves themes by name and keeps the current one hot
// reloadable. The apply callback receives every successfully loaded or
// reloaded theme.
type Loader struct {
	mu          sync.RWMutex
	logger      *slog.Logger
	themesDir   string
	currentName string
	theme       *Theme
	watcher     *Watcher
	onApply     func(*Theme)
}

// NewLoader creates a theme loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	themesDir, err := ThemesDir()
	if err != nil {
		logger.Warn("failed to get themes directory", "error", err)
		themesDir = ""
	}

	return &Loader{
		logger:    logger,
		themesDir: themesDir,
	}
}

// SetApplyCallback sets the function invoked with each loaded theme.
func (l *Loader) SetApplyCallback(fn func(*Theme)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onApply = fn
}

// LoadTheme loads a theme by name. Resolution order:
//
//  1. User themes directory (~/.config/crouton/themes/)
//  2. Embedded/bundled themes
//
// A user file with a bundled theme's name overrides it. An unknown or
// unparseable theme falls back to the default, so LoadTheme always
// leaves a usable theme in place.
func (l *Loader) LoadTheme(name string) error {
	if name == "" {
		name = DefaultThemeName
	}
	theme := l.resolve(name)

	l.mu.Lock()
	l.theme = theme
	l.currentName = theme.Name
	cb := l.onApply
	l.mu.Unlock()

	if cb != nil {
		cb(theme)
	}
	return nil
}

func (l *Loader) resolve(name string) *Theme {
	if l.themesDir != "" {
		themePath := filepath.Join(l.themesDir, name+".toml")
		if _, err := os.Stat(themePath); err == nil {
			theme, err := NewTheme(name, themePath)
			if err != nil {
				l.logger.Warn("failed to load user theme, trying bundled", "theme", name, "error", err)
			} else {
				l.logger.Info("loaded user theme", "name", name, "path", themePath)
				return theme
			}
		}
	}

	if theme, err := LoadEmbedded(name); err == nil {
		l.logger.Info("loaded bundled theme", "name", name)
		return theme
	}

	l.logger.Warn("theme not found, using default", "theme", name)
	return NewDefaultTheme()
}

// GetTheme returns the currently loaded theme.
func (l *Loader) GetTheme() *Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.theme
}

// CurrentTheme returns the name of the currently loaded theme.
func (l *Loader) CurrentTheme() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentName
}

// Reload reloads the current theme from disk.
func (l *Loader) Reload() error {
	l.mu.RLock()
	name := l.currentName
	l.mu.RUnlock()
	return l.LoadTheme(name)
}

// StartHotReload starts watching the current theme file. Changes flow
// through the apply callback. Bundled themes have no file to watch.
func (l *Loader) StartHotReload(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.theme == nil || l.theme.IsDefault || l.theme.Path == "" {
		l.logger.Debug("not starting hot-reload for bundled theme")
		return
	}

	if l.watcher != nil {
		l.watcher.Stop()
	}

	l.watcher = NewWatcher(l.theme, l.logger)
	l.watcher.SetChangeCallback(func(theme *Theme) {
		l.mu.RLock()
		cb := l.onApply
		l.mu.RUnlock()
		l.logger.Info("hot-reloaded theme", "name", theme.Name)
		if cb != nil {
			cb(theme)
		}
	})

	if err := l.watcher.Start(ctx); err != nil {
		l.logger.Warn("failed to start theme watcher", "error", err)
	}
}

// StopHotReload stops watching the theme for changes.
func (l *Loader) StopHotReload() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.watcher != nil {
		l.watcher.Stop()
		l.watcher = nil
	}
}

// ListThemes returns all available theme names, bundled and user, with
// duplicates removed.
func (l *Loader) ListThemes() []string {
	seen := make(map[string]bool)
	var themes []string

	for _, name := range ListEmbeddedThemes() {
		if !seen[name] {
			seen[name] = true
			themes = append(themes, name)
		}
	}

	if l.themesDir != "" {
		entries, err := os.ReadDir(l.themesDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				name := entry.Name()
				if filepath.Ext(name) == ".toml" {
					themeName := name[:len(name)-5]
					if !seen[themeName] {
						seen[themeName] = true
						themes = append(themes, themeName)
					}
				}
			}
		} else if !os.IsNotExist(err) {
			l.logger.Debug("failed to read themes directory", "error", err)
		}
	}

	return themes
}

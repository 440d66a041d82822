package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the configuration when the overlay file changes and
// publishes the fresh copy through the live store. Only the YAML overlay is
// watched; pure environment-variable deployments never construct a watcher.
type Watcher struct {
	path     string
	store    *Store
	logger   *zap.Logger
	onReload []func(*Config)
}

// NewWatcher creates a watcher over the given overlay file. Reloads are
// published through store.
func NewWatcher(path string, store *Store, logger *zap.Logger) *Watcher {
	return &Watcher{path: path, store: store, logger: logger}
}

// OnReload registers a callback invoked with every successfully reloaded
// configuration, after the store has been updated. Must be called before Run.
func (w *Watcher) OnReload(fn func(*Config)) {
	w.onReload = append(w.onReload, fn)
}

// Run watches until the context is cancelled. Editors replace files rather
// than writing in place, so the parent directory is watched and events are
// debounced before reloading.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	var debounce *time.Timer
	reload := func() {
		cfg, err := LoadConfig()
		if err != nil {
			w.logger.Warn("config reload failed, keeping previous", zap.Error(err))
			return
		}
		w.store.Replace(cfg)
		w.logger.Info("configuration reloaded", zap.String("path", w.path))
		for _, fn := range w.onReload {
			fn(cfg)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(200*time.Millisecond, reload)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

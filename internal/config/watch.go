package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads one config file whenever it changes on disk.
//
// The watch is placed on the file's directory, not the file itself, so it
// survives editors that save by renaming a temp file over the original.
type Watcher struct {
	path string
	log  *zap.Logger
}

// NewWatcher returns a Watcher for path. A nil logger discards log output.
func NewWatcher(path string, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{path: filepath.Clean(path), log: log.Named("config")}
}

// Run calls onChange with each successfully reloaded Config until ctx is
// cancelled. A file that fails to load is logged and skipped; the caller
// keeps whatever fixtures it already had.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: new watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("config: watch %s: %w", dir, err)
	}
	w.log.Info("watching for changes", zap.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.touches(ev) {
				continue
			}
			w.reload(onChange)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", zap.Error(err))
		}
	}
}

// touches reports whether ev may have changed the config file's content.
// A rename onto the file arrives as Create; Remove and a rename away leave
// nothing to load.
func (w *Watcher) touches(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func (w *Watcher) reload(onChange func(*Config)) {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("reload failed, fixtures unchanged", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.log.Info("reloaded", zap.String("path", w.path))
	onChange(cfg)
}

// Watch is shorthand for NewWatcher(path, log).Run(ctx, onChange).
func Watch(ctx context.Context, path string, log *zap.Logger, onChange func(*Config)) error {
	return NewWatcher(path, log).Run(ctx, onChange)
}

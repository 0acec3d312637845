package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yildizm/breedview/internal/debounce"
)

// reloadSettle absorbs the burst of events editors emit for a single save.
const reloadSettle = 100 * time.Millisecond

// ReloadFunc receives the freshly loaded config, or the error that
// prevented loading it.
type ReloadFunc func(*Config, error)

// Watch reloads the configuration whenever path changes and hands the result
// to fn until ctx is done. customPath is passed to LoadConfig as is, so an
// empty value re-runs the full layered search. The parent directory is
// watched so editors that replace the file on save are still seen.
func Watch(ctx context.Context, path, customPath string, fn ReloadFunc) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	loader := NewLoader()
	reload := debounce.New(func(p string) {
		fn(loader.LoadConfig(p))
	}, reloadSettle)

	go func() {
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					reload.Call(customPath)
				}
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fn(nil, fmt.Errorf("watcher error: %w", werr))
			}
		}
	}()

	return nil
}

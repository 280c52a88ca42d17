package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long Watch waits after a file event before reloading.
// Editors save in bursts (write, chmod, rename+create); the delay collapses
// each burst into a single reload.
const debounceDelay = 200 * time.Millisecond

// Watch monitors path and calls onChange with the newly loaded Config after
// each rewrite. It runs until ctx is cancelled.
//
// A rewrite that fails to load (e.g., invalid YAML) is logged and dropped —
// the active config stays in effect and onChange is not called. Atomic saves
// replace the file's inode, so the path is re-added after every event burst.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("config: watch %q: %w", path, err)
	}

	slog.Info("watching config", "path", path)

	// pending is nil (blocking forever) until an event arms the debounce.
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			pending = time.After(debounceDelay)
			_ = watcher.Add(path)

		case <-pending:
			pending = nil

			cfg, err := Load(path)
			if err != nil {
				slog.Error("config reload failed, keeping active config",
					"path", path, "err", err)
				continue
			}

			slog.Info("config reloaded",
				"path", path,
				"sensors", len(cfg.Sensors),
				"notifiers", len(cfg.Notifiers),
			)
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config watcher error", "err", err)
		}
	}
}

package templates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog whenever a .tex file in the override dir changes.
// It blocks until ctx is done. With no override dir it returns immediately.
func (c *Catalog) Watch(ctx context.Context) error {
	if c.dir == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(c.dir); err != nil {
		return fmt.Errorf("watch %s: %w", c.dir, err)
	}
	slog.Info("watching template overrides", "dir", c.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ".tex" {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if err := c.Reload(); err != nil {
				slog.Error("template reload failed", "file", event.Name, "error", err)
				continue
			}
			slog.Info("templates reloaded", "file", event.Name, "op", event.Op.String())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				slog.Warn("template watcher overflow, reloading")
				if rerr := c.Reload(); rerr != nil {
					slog.Error("template reload failed", "error", rerr)
				}
				continue
			}
			slog.Error("template watcher", "error", err)
		}
	}
}

package config

import (
	"context"
	"fmt"
	"path/filepath"

	"fantasy-stats-web/logging"

	"github.com/fsnotify/fsnotify"
)

// WatchNotices reloads the config file whenever it changes and hands its
// notices to onChange. The directory is watched rather than the file so
// editors that replace the file are seen too. It returns once the watcher is
// running and stops when ctx is done.
func WatchNotices(ctx context.Context, path string, onChange func(map[string]string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	logger := logging.For("ConfigWatcher")
	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				logger.Debug("fsnotify event=%s file=%s", event.Op, event.Name)
				cfg := &Config{}
				if err := cfg.LoadFile(path); err != nil {
					logger.Warn("Keeping previous notices: %v", err)
					continue
				}
				onChange(cfg.Notices)
				logger.Info("Reloaded %d notices from %s", len(cfg.Notices), path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("fsnotify error=%v", err)
			}
		}
	}()
	return nil
}

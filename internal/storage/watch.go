package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchSettingsFile reloads configPath whenever it is written, created or
// renamed into place and passes the file and env-merged values to onChange. Load failures go
// to onError. The watch runs until ctx is cancelled.
func WatchSettingsFile(ctx context.Context, configPath string, onChange func(LoadedSettings), onError func(error)) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	// Editors usually replace the file, so watch the directory.
	if err := watcher.Add(configDir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch settings directory: %w", err)
	}

	target := filepath.Clean(configPath)
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
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				loaded, err := loadLayers(configPath)
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				onChange(loaded)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()
	return nil
}

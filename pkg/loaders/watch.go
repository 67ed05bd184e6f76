package loaders

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events an editor produces for a single save
const watchDebounce = 100 * time.Millisecond

// WatchSceneFile reloads the scene file each time it changes on disk and passes the
// result to onChange, until ctx is done. Parse errors are passed to onChange rather than
// stopping the watch. The parent directory is watched so editors that replace the file
// by renaming are still seen.
func WatchSceneFile(ctx context.Context, path string, onChange func(*SceneFile, error)) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %q: %w", path, err)
	}

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				reload = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(nil, fmt.Errorf("watch %q: %w", path, err))
		case <-reload:
			reload = nil
			onChange(LoadSceneFile(path))
		}
	}
}

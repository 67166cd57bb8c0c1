package store

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 500 * time.Millisecond

// Watch reloads the snapshot whenever files under the data directory change.
// Events are debounced because editors and sync tools emit bursts. Blocks
// until ctx is canceled.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range []string{s.dataDir, s.experiencesPath()} {
		if err := watcher.Add(dir); err != nil {
			s.logger.Warn().Err(err).Str("dir", dir).Msg("watch skipped")
		}
	}

	var debounce *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn().Err(err).Msg("watch error")
		case <-reload:
			s.logger.Info().Msg("data change detected, reloading snapshot")
			s.Load()
		}
	}
}

func (s *Store) experiencesPath() string {
	return filepath.Join(s.dataDir, experiencesDir)
}

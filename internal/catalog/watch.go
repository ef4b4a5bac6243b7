package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ManifestDebounce collapses bursts of editor writes into one reload.
const ManifestDebounce = 250 * time.Millisecond

// WatchManifest reloads a local manifest file into s whenever it changes,
// until ctx is cancelled. The parent directory is watched so editors that
// replace the file by rename are picked up. A manifest that fails to parse
// is logged and the previous overlays stay published.
func (s *Store) WatchManifest(ctx context.Context) error {
	path := s.sources.Manifest
	if path == "" || IsRemote(path) {
		return fmt.Errorf("watch manifest %q: not a local file", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch manifest: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch manifest: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch manifest: %w", err)
	}

	go s.watchLoop(ctx, watcher, abs)
	return nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string) {
	defer watcher.Close()

	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer
	pending := false

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			debounce.Reset(ManifestDebounce)

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			s.reloadManifest(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("manifest watcher error", "err", err)
		}
	}
}

func (s *Store) reloadManifest(ctx context.Context) {
	m, err := s.FetchManifest(ctx)
	s.metrics.RefreshResult("manifest", err)
	if err != nil {
		s.log.Warn("manifest reload failed, keeping previous overlays", "source", s.sources.Manifest, "err", err)
		return
	}
	s.ReplaceOverlays(m)
	s.log.Info("manifest reloaded", "overlays", len(m))
}

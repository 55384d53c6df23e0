package content

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the content tree under dir whenever a file in it changes.
// Bursts of events within debounce collapse into one reload. Watch blocks
// until ctx is done and then returns nil.
func Watch(ctx context.Context, dir string, debounce time.Duration, reload func(context.Context) error, log *zap.SugaredLogger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: watcher: %w", err)
	}
	defer w.Close()

	if err := addTree(w, dir); err != nil {
		return fmt.Errorf("content: watch %s: %w", dir, err)
	}
	log.Infow("watching content", "dir", dir)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				// New directories must be registered before their files show up.
				_ = addTree(w, ev.Name)
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				timer.Reset(debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnw("content watcher error", "err", err)
		case <-timer.C:
			rctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			if err := reload(rctx); err != nil {
				log.Errorw("content reload failed, keeping previous snapshot", "err", err)
			}
			cancel()
		}
	}
}

func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

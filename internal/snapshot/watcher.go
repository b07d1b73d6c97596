package snapshot

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangedCallback is invoked after the slot file changes on disk from
// outside this process.
type ChangedCallback func()

// Watch observes the slot file's directory until ctx is cancelled and calls
// cb when the slot is modified out-of-band (hand-edited, restored from a
// backup, synced in by another machine). Events are debounced because an
// editor save typically produces a burst, and our own atomic saves are
// filtered out via the store's written-by-us check.
//
// The directory, not the file, is watched: the store replaces the file by
// rename, which would silently detach a file-level watch.
func Watch(ctx context.Context, store *Store, logger *slog.Logger, cb ChangedCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(store.Path())
	if err := w.Add(dir); err != nil {
		return err
	}

	logger.Info("snapshot watcher: started", slog.String("slot", store.Path()))

	var debounce *time.Timer
	var debounceCh <-chan time.Time

	schedule := func() {
		if debounce == nil {
			debounce = time.NewTimer(200 * time.Millisecond)
			debounceCh = debounce.C
		} else {
			debounce.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			logger.Info("snapshot watcher: stopped")
			return nil

		case <-debounceCh:
			if store.WrittenByUs() {
				continue
			}
			logger.Info("snapshot watcher: slot changed externally")
			if cb != nil {
				cb()
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != store.Path() {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				schedule()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("snapshot watcher: error", slog.String("error", err.Error()))
		}
	}
}

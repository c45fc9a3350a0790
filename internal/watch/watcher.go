// Package watch re-runs the compiler whenever the specification file
// changes on disk.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// OnChange is called after each debounced content change.
type OnChange func()

// Watch monitors the specification file until ctx is cancelled, calling
// cb after every burst of changes that actually altered the content.
//
// The watch is placed on the parent directory rather than the file
// itself, so editors that save through a temp file and rename stay
// visible. Event bursts are debounced, and a content checksum drops
// callbacks for saves that left the bytes untouched.
func Watch(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, cb OnChange) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("path", abs))

	last := digest(abs)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	schedule := func() {
		if debounceTimer == nil {
			debounceTimer = time.NewTimer(debounce)
			debounceCh = debounceTimer.C
		} else {
			debounceTimer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-debounceCh:
			sum := digest(abs)
			if sum == last {
				logger.Debug("watcher: content unchanged", slog.String("path", abs))
				continue
			}
			last = sum
			cb()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != abs {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				logger.Debug("watcher: event",
					slog.String("path", ev.Name),
					slog.String("op", ev.Op.String()))
				schedule()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// digest hashes the file's content, or returns "" when the file cannot
// be read. A vanished file hashes differently from every real content,
// so deletes still fire the callback.
func digest(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

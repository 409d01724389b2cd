package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the burst of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// Watch calls onChange every time the file at path is written or re-created,
// until ctx is cancelled. The parent directory is watched so that editors
// which replace the file on save are still noticed.
func (r *Runner) Watch(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("runner: create watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("runner: watch %s: %w", target, err)
	}
	r.log.Debug("watching input", "path", target)

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			pending = time.After(watchDebounce)

		case <-pending:
			pending = nil
			r.log.Debug("input changed", "path", target)
			onChange()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("input watcher error", "error", err)

		case <-ctx.Done():
			r.log.Debug("input watcher stopping")
			return nil
		}
	}
}

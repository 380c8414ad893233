package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/spanner-labs/refdex-cli/internal/logger"
)

const (
	// defaultSettle is how long the corpus file must stay quiet after a
	// change before a reload fires. Editors and atomic saves produce
	// bursts of events for one logical write.
	defaultSettle = 300 * time.Millisecond

	// defaultMinReload caps how often reloads may fire, whatever the
	// file does.
	defaultMinReload = 2 * time.Second
)

// Watcher reloads the corpus when its source file changes on disk. A
// failed reload keeps the previous corpus active; the watcher only
// logs and waits for the next change.
type Watcher struct {
	path     string
	onChange func(context.Context) error
	settle   time.Duration
	limiter  *rate.Limiter
}

// NewWatcher creates a watcher for the corpus file at path. onChange is
// invoked after changes settle, typically wired to the corpus service
// reload.
func NewWatcher(path string, onChange func(context.Context) error) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		settle:   defaultSettle,
		limiter:  rate.NewLimiter(rate.Every(defaultMinReload), 1),
	}
}

// Watch blocks until ctx is cancelled, firing onChange after corpus
// file changes settle.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory, not the file: atomic saves replace the file
	// and a watch on the old inode goes stale after the first save.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("Watching %s for corpus changes", w.path)

	settle := time.NewTimer(w.settle)
	settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Corpus file event: %s", event)
			settle.Reset(w.settle)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Corpus watcher error: %v", err)

		case <-settle.C:
			if !w.limiter.Allow() {
				// Reloaded too recently; treat the burst as still
				// settling.
				settle.Reset(w.settle)
				continue
			}
			w.fire(ctx)
		}
	}
}

// relevant reports whether the event concerns the corpus file and an
// operation that changes its contents. Chmod is ignored.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

func (w *Watcher) fire(ctx context.Context) {
	if err := w.onChange(ctx); err != nil {
		logger.Warn("Corpus reload failed, keeping previous corpus: %v", err)
		return
	}
	logger.Info("Corpus reloaded after file change")
}

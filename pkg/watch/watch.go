// Package watch reloads savegames as the game writes them.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/swhkit/swhedit/pkg/savegame"
)

// DefaultSettle is how long a file must stay quiet before it is read. The
// game writes a save in several chunks.
const DefaultSettle = 500 * time.Millisecond

// Ext is the savegame file extension
const Ext = ".dat"

// Event reports one reload. Exactly one of Savegame and Err is set.
type Event struct {
	Path     string
	Savegame *savegame.Savegame
	Err      error
}

// Watcher watches a save directory
type Watcher struct {
	Dir    string
	Settle time.Duration
	Logger *slog.Logger
}

// New creates a watcher for dir with the default settle time
func New(dir string) *Watcher {
	return &Watcher{Dir: dir, Settle: DefaultSettle}
}

// Run calls fn for every savegame written in the directory until ctx is
// cancelled. fn runs on the calling goroutine, one event at a time.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}
	settle := w.Settle
	if settle <= 0 {
		settle = DefaultSettle
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.Dir, err)
	}
	logger.Info("watching savegames", "dir", w.Dir)

	d := newDebouncer(settle, ctx.Done())
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !IsSavegame(event.Name) || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			d.touch(event.Name)

		case r := <-d.ready:
			if !d.claim(r) {
				continue
			}
			sg, err := savegame.Load(r.path)
			if err != nil {
				logger.Warn("failed to reload savegame", "path", r.path, "error", err)
			}
			fn(Event{Path: r.path, Savegame: sg, Err: err})

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

// IsSavegame reports whether name looks like a savegame. Hidden files are
// skipped. The temporary files written by savegame.Save carry a random
// suffix after the extension, so they never match.
func IsSavegame(name string) bool {
	base := filepath.Base(name)
	return !strings.HasPrefix(base, ".") && strings.EqualFold(filepath.Ext(base), Ext)
}

// Package watch re-triggers inspection when changelog files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/skipkayhil/rail-inspector/internal/logging"
)

// Watcher reports changes to a fixed set of files. It watches their parent
// directories so that editors which save by renaming are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	paths    map[string]struct{}
	debounce time.Duration
}

// New creates a Watcher for paths. Events are coalesced until no new event
// arrives for debounce.
func New(paths []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		paths:    make(map[string]struct{}, len(paths)),
		debounce: debounce,
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		w.paths[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	return w, nil
}

// Run delivers batches of changed paths to onChange until ctx is done or the
// watcher is closed. Watcher errors are logged and do not stop it.
// onChange runs on the Run goroutine, so events arriving meanwhile are
// batched into the next call. The underlying watcher is closed on return.
func (w *Watcher) Run(ctx context.Context, onChange func(changed []string)) error {
	defer w.watcher.Close()

	log := logging.Get(ctx)
	pending := make(map[string]struct{})

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("changelog changed")
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Errors such as fsnotify.ErrEventOverflow are transient.
			log.Warn().Err(err).Msg("watcher error")

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			clear(pending)
			onChange(changed)
		}
	}
}

// Close releases the watcher without running it.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if _, ok := w.paths[event.Name]; !ok {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

package localfile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/quicknotes/quicknotes/pkg/core"
)

// watchDebounce is the quiet window used to coalesce bursts of filesystem
// events (editors and atomic renames produce several per logical change).
const watchDebounce = 50 * time.Millisecond

// Watch implements core.Watchable. It observes the durable file and emits one
// Event per note that changed, comparing each reload against the previous
// snapshot. Writes from this process are observed too, since the file is the
// shared source of truth. The pattern filters note IDs using doublestar glob
// syntax; "*" (or empty) matches every note.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %s", pattern)
	}

	events := make(chan core.Event, s.config.EventBuffer)
	w := newWatchWorker(s, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	store     *Store
	pattern   string
	events    chan<- core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc

	// snapshot is the collection as of the last reconcile, keyed by note ID.
	// Only the run goroutine and its reconcile tasks touch it, serialized by
	// the debouncer's single slot.
	snapshot map[string]core.Note
}

func newWatchWorker(store *Store, pattern string, events chan<- core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("localfile-watcher"),
		store:      store,
		pattern:    pattern,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the parent directory: atomic saves replace the file via rename,
	// which would drop a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(w.store.Path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch store directory: %w", err)
	}

	notes, _ := w.store.Load(ctx)
	w.snapshot = make(map[string]core.Note, len(notes))
	for _, n := range notes {
		w.snapshot[n.ID] = n
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(watchDebounce)
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)
			if w.store.config.Logger.Enabled(ctx, slog.LevelDebug) {
				w.store.config.Logger.Error("watcher panic", "error", panicErr, "stack", string(debug.Stack()))
			} else {
				w.store.config.Logger.Error("watcher panic", "error", panicErr)
			}
		}
	}()
	defer close(w.events)
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Stop accepting triggers and wait for any in-flight reconcile before the
	// deferred close of the events channel.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.store.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// processFilesystemEvent filters directory noise down to changes of the
// durable file and schedules a debounced reconcile.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) (processed bool) {
	if filepath.Clean(event.Name) != filepath.Clean(w.store.Path) {
		return false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}

	w.store.config.Logger.Debug("store file changed", "op", event.Op.String())
	w.debouncer.trigger(func() {
		w.reconcile(ctx)
	})
	return true
}

// reconcile reloads the durable file, diffs it against the previous snapshot,
// and emits one event per changed note.
func (w *watchWorker) reconcile(ctx context.Context) {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		notes, res := w.store.Load(ctx)
		if res.Fallback {
			// Corrupt intermediate state (partial external write); keep the
			// old snapshot and wait for the next change.
			return nil
		}

		now := time.Now().Unix()
		current := make(map[string]core.Note, len(notes))
		for _, n := range notes {
			current[n.ID] = n
		}

		for id, n := range current {
			prev, existed := w.snapshot[id]
			switch {
			case !existed:
				w.sendEvent(ctx, core.Event{Type: core.EventCreate, ID: id, Timestamp: now})
			case prev != n:
				w.sendEvent(ctx, core.Event{Type: core.EventModify, ID: id, Timestamp: now})
			}
		}
		for id := range w.snapshot {
			if _, still := current[id]; !still {
				w.sendEvent(ctx, core.Event{Type: core.EventDelete, ID: id, Timestamp: now})
			}
		}

		w.snapshot = current
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		w.store.config.Logger.Error("reconcile panic", "error", err)
	}))
}

// sendEvent delivers an event, honoring the pattern filter and protecting
// against channel closure during shutdown.
func (w *watchWorker) sendEvent(ctx context.Context, event core.Event) {
	if matched, err := doublestar.Match(w.pattern, event.ID); err != nil || !matched {
		return
	}
	defer func() {
		// Recover from panic if channel was closed (worker stopping)
		_ = recover()
	}()
	select {
	case w.events <- event:
	case <-ctx.Done():
	}
}

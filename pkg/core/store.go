package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window before in-memory changes are
// flushed to storage. Mutations arriving inside the window restart it, so
// only the final state of an edit burst is written.
const DefaultDebounce = 300 * time.Millisecond

// Patch carries the partial fields of an update. Nil fields are left as-is.
type Patch struct {
	Title   *string
	Content *string
}

// StoreConfig holds the configuration for a Store.
type StoreConfig struct {
	Storage  Storage
	Logger   *slog.Logger
	Debounce time.Duration    // Zero means DefaultDebounce
	Now      func() time.Time // Zero means time.Now, injectable for tests
}

// Store owns the authoritative in-memory note collection, the current
// selection, and the pending flush timer. It mediates all mutations and
// triggers persistence through a debounced background flush.
//
// All public methods are safe for concurrent use; a single mutex serializes
// access, which is the Go rendition of the original single logical thread.
type Store struct {
	mu      sync.Mutex
	storage Storage
	logger  *slog.Logger
	now     func() time.Time
	window  time.Duration

	notes    []Note
	selected string
	dirty    bool
	closed   bool

	// Single-slot flush handle: scheduling a flush cancels any pending one,
	// guaranteeing at most one live timer. The generation counter invalidates
	// timers that already fired but lost the race against a newer mutation.
	timer     *time.Timer
	flushGen  int
	lastFlush Result

	subs    map[int]func(Event)
	nextSub int
}

// NewStore creates a Store around the given storage. Call Init before use.
func NewStore(cfg StoreConfig) *Store {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Store{
		storage: cfg.Storage,
		logger:  cfg.Logger,
		now:     cfg.Now,
		window:  cfg.Debounce,
		subs:    make(map[int]func(Event)),
	}
}

// Init loads the collection from storage and auto-selects the most recently
// updated note. Loading is best-effort: corrupt or absent data degrades to an
// empty collection, observable through the returned Result.
func (s *Store) Init(ctx context.Context) Result {
	notes, res := s.storage.Load(ctx)
	if res.Fallback {
		s.logger.Warn("storage load degraded to empty collection", "error", res.Err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Result{Fallback: true, Err: ErrStoreClosed}
	}
	s.notes = notes
	s.dirty = false
	if s.selected == "" && len(s.notes) > 0 {
		s.selected = s.notes[0].ID
	}
	return res
}

// Close cancels any pending flush and writes the final state synchronously
// if the collection is dirty. After Close, mutations are no-ops.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.dirty {
		s.lastFlush = s.storage.Save(ctx, snapshot(s.notes))
		s.dirty = false
		if s.lastFlush.Fallback {
			s.logger.Warn("final flush discarded", "error", s.lastFlush.Err)
		}
	}
	return nil
}

// Create builds a fresh note ("Untitled", empty content, UpdatedAt=now),
// prepends it so newest-first ordering holds without a re-sort, selects it,
// and schedules a flush.
func (s *Store) Create() (Note, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Note{}, ErrStoreClosed
	}

	now := s.now()
	n := Note{
		ID:        NewID(now),
		Title:     DefaultTitle,
		UpdatedAt: now.UnixMilli(),
	}
	s.notes = append([]Note{n}, s.notes...)
	s.selected = n.ID
	s.markDirtyLocked()
	notify := s.notifierLocked(Event{Type: EventCreate, ID: n.ID, Timestamp: now.Unix()})
	s.mu.Unlock()

	notify()
	return n, nil
}

// Update applies the patch to the note with the given id, but only when that
// note is the current selection; updating any other id is a no-op. It returns
// whether the patch was applied.
func (s *Store) Update(id string, patch Patch) bool {
	s.mu.Lock()
	if s.closed || id == "" || id != s.selected {
		s.mu.Unlock()
		return false
	}

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	now := s.now()
	n := &s.notes[idx]
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	n.UpdatedAt = now.UnixMilli()
	SortByUpdated(s.notes)

	s.markDirtyLocked()
	notify := s.notifierLocked(Event{Type: EventModify, ID: id, Timestamp: now.Unix()})
	s.mu.Unlock()

	notify()
	return true
}

// Delete removes the note with the given id. Deleting the selected note
// clears the selection; deleting any other note leaves it unchanged.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	if s.selected == id {
		s.selected = ""
	}
	s.markDirtyLocked()
	notify := s.notifierLocked(Event{Type: EventDelete, ID: id, Timestamp: s.now().Unix()})
	s.mu.Unlock()

	notify()
	return true
}

// Select marks the note with the given id as the current selection. If no
// note ends up selected and the collection is non-empty, the first (most
// recently updated) note is auto-selected. The resulting selection is
// returned (zero Note when the collection is empty).
func (s *Store) Select(id string) Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed && s.indexLocked(id) >= 0 {
		s.selected = id
	}
	if s.selected == "" && len(s.notes) > 0 {
		s.selected = s.notes[0].ID
	}
	if idx := s.indexLocked(s.selected); idx >= 0 {
		return s.notes[idx]
	}
	return Note{}
}

// Selected returns the currently selected note, if any.
func (s *Store) Selected() (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(s.selected); idx >= 0 {
		return s.notes[idx], true
	}
	return Note{}, false
}

// Search returns the notes whose title or content contains the query
// substring, case-insensitively, preserving collection order. An empty query
// returns the full collection. This is a pure read: no state changes.
func (s *Store) Search(query string) []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == "" {
		return snapshot(s.notes)
	}
	var out []Note
	for _, n := range s.notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	return out
}

// List returns a copy of the full collection, newest-first.
func (s *Store) List() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.notes)
}

// Len returns the number of notes in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// LastFlush reports the outcome of the most recent storage write.
func (s *Store) LastFlush() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFlush
}

// Subscribe registers a callback invoked after every collection change.
// The returned function unsubscribes. Callbacks run outside the store lock.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Watch observes external changes to the durable slot if the underlying
// storage supports it.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.storage.(Watchable)
	if !ok {
		return nil, errors.New("storage does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// markDirtyLocked flags the collection as ahead of the durable copy and
// restarts the single-slot flush timer. Caller must hold s.mu.
func (s *Store) markDirtyLocked() {
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.flushGen++
	gen := s.flushGen
	s.timer = time.AfterFunc(s.window, func() { s.flush(gen) })
}

// flush writes the full collection to storage. It runs on the timer
// goroutine once the quiescence window elapses without further mutations.
// A stale generation means the timer was superseded by a newer mutation.
func (s *Store) flush(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.dirty || gen != s.flushGen {
		return
	}
	s.timer = nil
	s.dirty = false
	s.lastFlush = s.storage.Save(context.Background(), snapshot(s.notes))
	if s.lastFlush.Fallback {
		// Swallowed: the next mutation writes the full state again.
		s.logger.Warn("flush discarded", "error", s.lastFlush.Err)
	} else {
		s.logger.Debug("flushed collection", "notes", len(s.notes))
	}
}

// notifierLocked captures the current subscriber set and returns a closure
// that delivers the event. Caller must hold s.mu and invoke the closure only
// after releasing it, so subscribers may safely re-enter the store.
func (s *Store) notifierLocked(e Event) func() {
	if len(s.subs) == 0 {
		return func() {}
	}
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return func() {
		for _, fn := range fns {
			fn(e)
		}
	}
}

// indexLocked returns the position of the note with the given id, or -1.
// Caller must hold s.mu.
func (s *Store) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func snapshot(notes []Note) []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}

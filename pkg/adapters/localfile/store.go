// Package localfile implements core.Storage on top of a single durable JSON
// file: the whole note collection lives under one key-like path and every
// save is a full-collection overwrite. Reads tolerate absent or corrupt data
// by degrading to an empty collection.
package localfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/quicknotes/quicknotes/pkg/core"
)

// DefaultKey is the namespaced name of the durable slot holding the entire
// note collection.
const DefaultKey = "quick-notes-v1.json"

// Config holds the configuration for the local file storage.
type Config struct {
	// Path is the full path of the durable JSON file.
	Path string

	// Logger is optional; nil discards.
	Logger *slog.Logger

	// Now is injectable for tests. Zero means time.Now.
	Now func() time.Time

	// EventBuffer sizes the Watch channel. Zero means 100.
	EventBuffer int
}

// Store is the file-backed storage adapter.
type Store struct {
	Path   string
	config Config

	mu            sync.Mutex
	watcherActive bool
}

// NewStore creates a new file-backed storage adapter.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 100
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Load reads the durable file and returns the normalized, newest-first
// collection. An absent file is "no data yet" (empty collection, no
// fallback). Corrupt or non-array content degrades to an empty collection
// with Result.Fallback set; no error ever reaches the caller.
func (s *Store) Load(ctx context.Context) ([]core.Note, core.Result) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return []core.Note{}, core.Result{}
	}
	if err != nil {
		s.config.Logger.Warn("read failed, starting empty", "path", s.Path, "error", err)
		return []core.Note{}, core.Result{Fallback: true, Err: err}
	}

	notes, err := core.DecodeNotes(data, s.config.Now())
	if err != nil {
		s.config.Logger.Warn("corrupt collection, starting empty", "path", s.Path, "error", err)
		return []core.Note{}, core.Result{Fallback: true, Err: err}
	}
	return notes, core.Result{}
}

// Save serializes the full collection and overwrites the durable file
// atomically. Failures are swallowed and reported through the Result; the
// next save writes the full state again.
func (s *Store) Save(ctx context.Context, notes []core.Note) core.Result {
	data, err := core.EncodeNotes(notes)
	if err != nil {
		s.config.Logger.Warn("save discarded", "error", err)
		return core.Result{Fallback: true, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		s.config.Logger.Warn("save discarded", "error", err)
		return core.Result{Fallback: true, Err: fmt.Errorf("create store directory: %w", err)}
	}

	if err := writeFileAtomic(s.Path, data, 0644); err != nil {
		s.config.Logger.Warn("save discarded", "error", err)
		return core.Result{Fallback: true, Err: err}
	}

	s.config.Logger.Debug("collection saved", "path", s.Path, "notes", len(notes))
	return core.Result{}
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *Store) isWatcherActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watcherActive
}

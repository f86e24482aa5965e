package quicknotes

import (
	"log/slog"
	"time"

	"github.com/quicknotes/quicknotes/internal/platform"
	"github.com/quicknotes/quicknotes/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain entity.
type Note = core.Note

// Patch carries the partial fields of an update.
type Patch = core.Patch

// Event represents a change in the note collection.
type Event = core.Event

// Result reports the outcome of a best-effort storage operation.
type Result = core.Result

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithStorage allows injecting a custom storage adapter.
func WithStorage(storage core.Storage) Option {
	return platform.WithStorage(storage)
}

// WithLogger sets the logger for the store and adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithKey sets the filename of the durable slot inside the store directory.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithDebounce sets the quiescence window before changes are flushed.
func WithDebounce(window time.Duration) Option {
	return platform.WithDebounce(window)
}

// WithNow injects the clock used for timestamps and identifiers.
// Intended for tests.
func WithNow(now func() time.Time) Option {
	return platform.WithNow(now)
}

// WithEventBuffer sets the size of the Watch event channel buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithForceTemp forces the store into a temporary directory (useful for
// testing and demos).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the `go run` sandbox mechanism.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New builds a note Store rooted at the given directory and loads the
// collection from the durable slot.
func New(dir string, opts ...Option) (*core.Store, error) {
	return platform.New(dir, opts...)
}

// --- Safety & Utils ---

// ResolveStorePath determines the actual directory for the store based on
// safety rules.
func ResolveStorePath(userPath string, forceTemp bool) string {
	return platform.ResolveStorePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindStoreRoot recursively looks upwards for a directory containing the
// durable slot with the given key.
func FindStoreRoot(startDir, key string) (string, error) {
	return platform.FindStoreRoot(startDir, key)
}

package core

import "context"

// Storage defines the contract for persisting the note collection.
// Adhering to this interface keeps the store independent of the underlying
// durable medium (local file, memory, browser-style key-value slot).
//
// Both operations are best-effort: failures degrade to a safe
// default and are reported through Result instead of an error return, so
// callers can observe the fallback without being forced to handle it.
type Storage interface {
	// Load reads the full collection from the durable slot.
	// Absent, corrupt, or malformed data yields an empty collection with
	// Result.Fallback set. Records are normalized and sorted newest-first.
	Load(ctx context.Context) ([]Note, Result)

	// Save overwrites the durable slot with the full collection.
	// There are no partial writes: each Save replaces the prior content.
	Save(ctx context.Context, notes []Note) Result
}

// Watchable defines an interface for storages that can observe external
// changes to the durable slot (another process editing the same file).
type Watchable interface {
	// Watch emits one Event per note that changed outside this process.
	// The pattern filters event IDs using glob syntax; "*" matches all.
	// The channel closes when ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Result reports the outcome of a best-effort storage operation.
// The zero value means the operation fully succeeded.
type Result struct {
	// Fallback is true when the operation degraded to a safe default
	// (empty collection on load, discarded write on save).
	Fallback bool

	// Err retains the underlying cause for logging and tests.
	// It is never propagated as a failure.
	Err error
}

// OK reports whether the operation completed without degradation.
func (r Result) OK() bool { return !r.Fallback }

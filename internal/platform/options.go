package platform

import (
	"log/slog"
	"time"

	"github.com/quicknotes/quicknotes/pkg/core"
)

// options holds the internal configuration for the quicknotes store.
type options struct {
	storage     core.Storage
	logger      *slog.Logger
	key         string
	debounce    time.Duration
	now         func() time.Time
	eventBuffer int
	forceTemp   bool
	devSafety   bool
}

// Option defines a functional option for configuring the store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		key:       "",
		devSafety: true,
	}
}

// WithStorage allows injecting a custom storage adapter (e.g. mock, memory).
// If provided, the default local file adapter will be skipped.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithLogger sets the logger for the store and adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithKey sets the filename of the durable slot inside the store directory.
// Defaults to localfile.DefaultKey.
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithDebounce sets the quiescence window before in-memory changes are
// flushed to storage. Zero keeps the default (300ms).
func WithDebounce(window time.Duration) Option {
	return func(o *options) {
		o.debounce = window
	}
}

// WithNow injects the clock used for timestamps and identifiers.
// Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithEventBuffer sets the size of the Watch event channel buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithForceTemp forces the store into a temporary directory (useful for
// testing and demos).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox mechanism when running via `go run`.
// By default (true), the store is re-rooted into a temporary directory to
// prevent accidental data loss during development.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

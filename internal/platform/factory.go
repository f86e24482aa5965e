package platform

import (
	"context"
	"path/filepath"

	"github.com/quicknotes/quicknotes/pkg/adapters/localfile"
	"github.com/quicknotes/quicknotes/pkg/core"
)

// New builds a note Store rooted at the given directory and loads the
// collection. The directory argument is adapter-specific: for the default
// local file adapter it is the folder holding the durable JSON slot.
func New(dir string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storage := o.storage
	if storage == nil {
		key := o.key
		if key == "" {
			key = localfile.DefaultKey
		}

		// Safety & path resolution: `go run` / `go test` are sandboxed into
		// a temp dir unless explicitly bypassed.
		useTemp := o.forceTemp || (IsDevRun() && o.devSafety)
		resolved := ResolveStorePath(dir, useTemp)
		if useTemp && o.logger != nil {
			o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", dir, "resolved_path", resolved)
		}

		storage = localfile.NewStore(localfile.Config{
			Path:        filepath.Join(resolved, key),
			Logger:      o.logger,
			Now:         o.now,
			EventBuffer: o.eventBuffer,
		})
	}

	store := core.NewStore(core.StoreConfig{
		Storage:  storage,
		Logger:   o.logger,
		Debounce: o.debounce,
		Now:      o.now,
	})

	if res := store.Init(context.Background()); res.Fallback && o.logger != nil {
		o.logger.Warn("store initialized from fallback", "error", res.Err)
	}

	return store, nil
}

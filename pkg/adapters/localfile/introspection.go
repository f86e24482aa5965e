package localfile

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	WatcherActive bool   `json:"watcher_active"`
	EventBuffer   int    `json:"event_buffer"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return StoreState{
		Path:          s.Path,
		WatcherActive: s.isWatcherActive(),
		EventBuffer:   s.config.EventBuffer,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "localfile"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

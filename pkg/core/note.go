package core

import (
	"sort"
	"strings"
	"time"
)

// DefaultTitle is the placeholder assigned to notes without a title.
const DefaultTitle = "Untitled"

// Note is the central entity of the domain.
// It represents a single user-authored record identified by an ID.
// It is agnostic to where the collection is persisted (file, memory, remote).
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt int64  `json:"updatedAt"` // Milliseconds since epoch
}

// Normalize fills missing fields with their defaults.
// An empty title becomes DefaultTitle; a non-positive timestamp becomes 'now'.
// It does NOT touch the ID: notes without an ID are invalid and should be
// discarded by the caller, not repaired.
func (n *Note) Normalize(now time.Time) {
	if strings.TrimSpace(n.Title) == "" {
		n.Title = DefaultTitle
	}
	if n.UpdatedAt <= 0 {
		n.UpdatedAt = now.UnixMilli()
	}
}

// Matches reports whether the note's title or content contains the query
// substring, case-insensitively. An empty query matches everything.
func (n Note) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// SortByUpdated orders notes descending by UpdatedAt (newest first).
// The sort is stable so equal timestamps keep their relative order.
func SortByUpdated(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt > notes[j].UpdatedAt
	})
}

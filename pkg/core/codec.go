package core

import (
	"encoding/json"
	"fmt"
	"time"
)

// DecodeNotes parses a JSON-encoded note array the tolerant way the durable
// slot is read: the payload must be a JSON array of objects, but individual
// records are repaired rather than rejected.
//
// Per-record rules:
//   - missing or non-string "id", or empty "id": record discarded
//   - missing or non-string "title": DefaultTitle
//   - missing or non-string "content": empty string
//   - missing or non-numeric "updatedAt": 'now'
//
// An error is returned only when the payload as a whole is not a JSON array
// of objects. The result is sorted newest-first.
func DecodeNotes(data []byte, now time.Time) ([]Note, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode note array: %w", err)
	}

	notes := make([]Note, 0, len(records))
	for _, rec := range records {
		id, ok := rec["id"].(string)
		if !ok || id == "" {
			continue
		}

		n := Note{ID: id}
		if title, ok := rec["title"].(string); ok {
			n.Title = title
		}
		if content, ok := rec["content"].(string); ok {
			n.Content = content
		}
		if ts, ok := rec["updatedAt"].(float64); ok {
			n.UpdatedAt = int64(ts)
		}
		n.Normalize(now)
		notes = append(notes, n)
	}

	SortByUpdated(notes)
	return notes, nil
}

// EncodeNotes serializes the collection as a pretty-printed JSON array,
// the shape the durable slot and export artifacts share.
func EncodeNotes(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	return json.MarshalIndent(notes, "", "  ")
}

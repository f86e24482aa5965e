package core

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	tests := []struct {
		name      string
		in        Note
		wantTitle string
		wantTime  int64
	}{
		{
			name:      "Fills Missing Title",
			in:        Note{ID: "A", UpdatedAt: 42},
			wantTitle: DefaultTitle,
			wantTime:  42,
		},
		{
			name:      "Whitespace Title Counts As Empty",
			in:        Note{ID: "A", Title: "  ", UpdatedAt: 42},
			wantTitle: DefaultTitle,
			wantTime:  42,
		},
		{
			name:      "Fills Missing Timestamp",
			in:        Note{ID: "A", Title: "Kept"},
			wantTitle: "Kept",
			wantTime:  now.UnixMilli(),
		},
		{
			name:      "Negative Timestamp Replaced",
			in:        Note{ID: "A", Title: "Kept", UpdatedAt: -9},
			wantTitle: "Kept",
			wantTime:  now.UnixMilli(),
		},
		{
			name:      "Complete Note Untouched",
			in:        Note{ID: "A", Title: "Kept", Content: "body", UpdatedAt: 42},
			wantTitle: "Kept",
			wantTime:  42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.in
			n.Normalize(now)
			if n.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", n.Title, tt.wantTitle)
			}
			if n.UpdatedAt != tt.wantTime {
				t.Errorf("UpdatedAt = %d, want %d", n.UpdatedAt, tt.wantTime)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	n := Note{ID: "A", Title: "Grocery List", Content: "Milk and Eggs"}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"grocery", true},
		{"GROCERY", true},
		{"eggs", true},
		{"ilk", true},
		{"bread", false},
	}

	for _, tt := range tests {
		if got := n.Matches(tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSortByUpdated(t *testing.T) {
	notes := []Note{
		{ID: "old", UpdatedAt: 100},
		{ID: "new", UpdatedAt: 300},
		{ID: "mid", UpdatedAt: 200},
	}
	SortByUpdated(notes)

	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if notes[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, notes[i].ID, id)
		}
	}
}

func TestSortByUpdated_StableOnTies(t *testing.T) {
	notes := []Note{
		{ID: "first", UpdatedAt: 100},
		{ID: "second", UpdatedAt: 100},
	}
	SortByUpdated(notes)

	if notes[0].ID != "first" || notes[1].ID != "second" {
		t.Errorf("tie order changed: got [%s %s]", notes[0].ID, notes[1].ID)
	}
}

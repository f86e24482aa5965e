package core

// Merge reconciles an externally supplied note collection with the current
// one using per-note last-writer-wins: for each distinct ID, the variant with
// the greater UpdatedAt survives. Ties keep the last variant encountered,
// iterating current first and then imported, so on an exact timestamp tie the
// imported copy overwrites the local one.
//
// The result contains one note per distinct ID, sorted newest-first.
// Neither input slice is mutated.
func Merge(current, imported []Note) []Note {
	byID := make(map[string]Note, len(current)+len(imported))
	order := make([]string, 0, len(current)+len(imported))

	for _, n := range current {
		if _, seen := byID[n.ID]; !seen {
			order = append(order, n.ID)
		}
		byID[n.ID] = n
	}
	for _, n := range imported {
		prev, seen := byID[n.ID]
		if !seen {
			order = append(order, n.ID)
			byID[n.ID] = n
			continue
		}
		if n.UpdatedAt >= prev.UpdatedAt {
			byID[n.ID] = n
		}
	}

	merged := make([]Note, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}
	SortByUpdated(merged)
	return merged
}

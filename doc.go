// Package quicknotes is the Composition Root for the quicknotes engine.
//
// It connects the core note store (Domain Layer) with the storage adapter
// (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// quicknotes is the state-and-persistence core of a single-user note-taking
// tool: an in-memory collection of short text notes synchronized to a single
// durable JSON slot, with a last-writer-wins merge for importing backups.
// Storage is best-effort: absent or corrupt data degrades to an empty
// collection and write failures are swallowed, trading correctness for
// availability in a local personal tool.
//
// Features:
//
//   - **Hexagonal Architecture**: the store is isolated from persistence details.
//   - **Debounced Persistence**: edit bursts collapse into a single write after
//     a 300ms quiet window; at most one flush is ever pending.
//   - **Merge Import**: external note sets reconcile per-id, newest wins.
//   - **Default Adapter (local file)**: one atomic-replace JSON file.
//   - **Observable Fallbacks**: best-effort operations report a Result instead
//     of hiding the degradation.
//   - **Watchable**: external edits to the durable file surface as events.
//
// Usage:
//
//	store, err := quicknotes.New("./notes",
//		quicknotes.WithLogger(logger),
//	)
//
//	note, _ := store.Create()
//	store.Update(note.ID, quicknotes.Patch{Title: ptr("Groceries")})
//	defer store.Close(ctx) // flushes pending changes
package quicknotes

package quicknotes_test

import (
	"context"
	"testing"
	"time"

	"github.com/quicknotes/quicknotes"
)

func strptr(s string) *string { return &s }

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := quicknotes.New(dir, quicknotes.WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	note, err := store.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !store.Update(note.ID, quicknotes.Patch{
		Title:   strptr("Groceries"),
		Content: strptr("milk, eggs"),
	}) {
		t.Fatal("update rejected")
	}
	if err := store.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := quicknotes.New(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close(ctx)

	if reopened.Len() != 1 {
		t.Fatalf("expected 1 persisted note, got %d", reopened.Len())
	}
	selected, ok := reopened.Selected()
	if !ok {
		t.Fatal("expected the newest note to be auto-selected")
	}
	if selected.Title != "Groceries" || selected.Content != "milk, eggs" {
		t.Errorf("persisted note mismatch: %+v", selected)
	}
}

func TestExportImportBetweenStores(t *testing.T) {
	ctx := context.Background()
	window := quicknotes.WithDebounce(20 * time.Millisecond)

	source, err := quicknotes.New(t.TempDir(), window)
	if err != nil {
		t.Fatal(err)
	}
	defer source.Close(ctx)

	note, _ := source.Create()
	source.Update(note.ID, quicknotes.Patch{Title: strptr("Shared")})

	data, err := source.ExportJSON()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	target, err := quicknotes.New(t.TempDir(), window)
	if err != nil {
		t.Fatal(err)
	}
	defer target.Close(ctx)

	if err := target.ImportJSON(data); err != nil {
		t.Fatalf("import: %v", err)
	}
	if target.Len() != 1 {
		t.Fatalf("expected 1 note after import, got %d", target.Len())
	}
	if got := target.Search("Shared"); len(got) != 1 {
		t.Errorf("imported note not searchable, got %d hits", len(got))
	}
}

func TestSafetySandboxRerootsNonTempPaths(t *testing.T) {
	resolved := quicknotes.ResolveStorePath("/home/someone/notes", true)
	if resolved == "/home/someone/notes" {
		t.Error("forceTemp must not keep a path outside the temp dir")
	}
}

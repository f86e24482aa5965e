package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindStoreRootWalksUpwards(t *testing.T) {
	root := t.TempDir()
	key := "quick-notes-v1.json"

	if err := os.WriteFile(filepath.Join(root, key), []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindStoreRoot(nested, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != root {
		t.Errorf("got %q, want %q", got, root)
	}
}

func TestFindStoreRootPrefersNearest(t *testing.T) {
	root := t.TempDir()
	key := "quick-notes-v1.json"

	inner := filepath.Join(root, "inner")
	if err := os.MkdirAll(inner, 0755); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{root, inner} {
		if err := os.WriteFile(filepath.Join(dir, key), []byte("[]"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := FindStoreRoot(inner, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != inner {
		t.Errorf("got %q, want nearest dir %q", got, inner)
	}
}

func TestFindStoreRootNotFound(t *testing.T) {
	// A fresh temp dir has no slot file anywhere up to the filesystem root
	// with this name.
	_, err := FindStoreRoot(t.TempDir(), "definitely-not-a-real-slot-4f1a.json")
	if err == nil {
		t.Fatal("expected an error when no store root exists")
	}
}

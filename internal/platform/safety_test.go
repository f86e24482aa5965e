package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsDevRunDetectsTestBinary(t *testing.T) {
	// Test binaries either live under the temp dir or carry a .test suffix;
	// both must be classified as dev runs.
	if !IsDevRun() {
		t.Error("expected IsDevRun to be true inside a test binary")
	}
}

func TestResolveStorePathPassthrough(t *testing.T) {
	if got := ResolveStorePath("/srv/notes", false); got != "/srv/notes" {
		t.Errorf("expected passthrough without forceTemp, got %q", got)
	}
	if got := ResolveStorePath("", false); got != "." {
		t.Errorf("expected empty path to resolve to '.', got %q", got)
	}
}

func TestResolveStorePathRerootsIntoTemp(t *testing.T) {
	devRoot := filepath.Join(os.TempDir(), "quicknotes-dev")

	cases := []struct {
		userPath string
		wantSub  string
	}{
		{"/home/user/notes", "notes"},
		{"relative/project", "project"},
		{"", "default"},
		{".", "default"},
		{"./", "default"},
	}
	for _, tc := range cases {
		got := ResolveStorePath(tc.userPath, true)
		want := filepath.Join(devRoot, tc.wantSub)
		if got != want {
			t.Errorf("ResolveStorePath(%q, true) = %q, want %q", tc.userPath, got, want)
		}
	}
}

func TestResolveStorePathKeepsTempPaths(t *testing.T) {
	// Paths already under the system temp dir (t.TempDir and friends) are
	// explicit intent and must not be re-rooted.
	dir := t.TempDir()

	got := ResolveStorePath(dir, true)
	if got != filepath.Clean(dir) {
		t.Errorf("temp path was re-rooted: got %q, want %q", got, dir)
	}
	if strings.Contains(got, "quicknotes-dev") {
		t.Errorf("temp path leaked into the dev sandbox: %q", got)
	}
}

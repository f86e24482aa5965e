package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFilename)
	data := "dir: /srv/notes\nkey: custom.json\ndebounce_ms: 500\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != "/srv/notes" {
		t.Errorf("dir = %q", cfg.Dir)
	}
	if cfg.Key != "custom.json" {
		t.Errorf("key = %q", cfg.Key)
	}
	if cfg.Debounce() != 500*time.Millisecond {
		t.Errorf("debounce = %v", cfg.Debounce())
	}
}

func TestLoadConfigMissingFileIsZero(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFilename))
	if err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if cfg != (FileConfig{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
	if cfg.Debounce() != 0 {
		t.Errorf("zero config debounce = %v, want 0", cfg.Debounce())
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFilename)
	if err := os.WriteFile(path, []byte("dir: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected a parse error for malformed YAML")
	}
}

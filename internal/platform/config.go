package platform

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the optional per-directory CLI configuration file.
const ConfigFilename = "quicknotes.yaml"

// FileConfig is the YAML configuration consumed by the CLI. All fields are
// optional; zero values keep the defaults.
type FileConfig struct {
	// Dir is the directory holding the durable slot.
	Dir string `yaml:"dir"`

	// Key overrides the durable slot filename.
	Key string `yaml:"key"`

	// DebounceMS overrides the flush quiescence window, in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`
}

// Debounce converts DebounceMS to a duration; zero means "use default".
func (c FileConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// LoadConfig reads a FileConfig from the given path. A missing file is not an
// error: it yields a zero config, matching the "no configuration required"
// contract of the core.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

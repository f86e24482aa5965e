package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindStoreRoot recursively looks upwards from startDir for a directory
// containing the durable slot with the given key (filename). It returns the
// absolute path of that directory, or an error when the filesystem root is
// reached without a hit.
func FindStoreRoot(startDir, key string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, key) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s found above %s", key, startDir)
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}

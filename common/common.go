package common

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileNames are the profile names looked up by FindConfigFile, in order
// of preference within one directory.
var ConfigFileNames = []string{"rulewalk.yaml", "rulewalk.yml", "rulewalk.toml"}

// FindConfigFile finds the nearest profile by searching the directory of
// target and its parents.
func FindConfigFile(target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("unable to determine absolute path: %w", err)
	}
	dir := abs
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}
	for {
		for _, name := range ConfigFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached the root directory
		}
		dir = parent
	}
	return "", fmt.Errorf("config file not found for target: %s", target)
}

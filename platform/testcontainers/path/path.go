package path

import (
	"os"
	"path/filepath"
)

// GetProjectRoot walks up from the working directory to the directory that
// holds go.mod.
func GetProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		panic("failed to get working directory: " + err.Error())
	}

	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			panic("failed to find project root (go.mod)")
		}

		dir = parent
	}
}

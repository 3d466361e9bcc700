package util

import (
	"os"
	"path/filepath"
)

// ResolveFile resolves a (possibly relative) path against the current
// working directory and reports whether the resulting file exists.
func ResolveFile(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, false
	}
	abs = filepath.Clean(abs)
	if _, err := os.Stat(abs); err != nil {
		return abs, false
	}
	return abs, true
}

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	assert.NoError(t, os.WriteFile(file, []byte("[Log]\n"), 0644))

	resolved, ok := ResolveFile(file)
	assert.True(t, ok)
	assert.Equal(t, filepath.Clean(file), resolved)

	_, ok = ResolveFile(filepath.Join(dir, "missing.toml"))
	assert.False(t, ok)
}

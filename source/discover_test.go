package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverSheetsFindsMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "themes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.css"), []byte("button{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes", "dark.css"), []byte("dialog{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	paths, err := DiscoverSheets(dir, "**/*.css")
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestReadAllConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.css")
	b := filepath.Join(dir, "b.css")
	require.NoError(t, os.WriteFile(a, []byte("button{}"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("dialog{}"), 0o644))

	out, err := ReadAll([]string{a, b})
	require.NoError(t, err)
	assert.Contains(t, out, "button{}")
	assert.Contains(t, out, "dialog{}")
}

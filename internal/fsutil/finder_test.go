package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestFindByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.hcl"))
	writeFile(t, filepath.Join(dir, "a.hcl"))
	writeFile(t, filepath.Join(dir, "nested", "c.hcl"))
	writeFile(t, filepath.Join(dir, "ignored.txt"))
	writeFile(t, filepath.Join(dir, ".hidden", "d.hcl"))

	files, err := FindByExtension(dir, ".hcl")
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "c.hcl"),
	}
	assert.Equal(t, want, files, "results are sorted and hidden dirs are skipped")
}

func TestFindByExtension_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.hcl")
	writeFile(t, path)

	files, err := FindByExtension(path, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	_, err = FindByExtension(filepath.Join(dir, "missing.hcl"), ".hcl")
	assert.Error(t, err)

	other := filepath.Join(dir, "notes.txt")
	writeFile(t, other)
	_, err = FindByExtension(other, ".hcl")
	assert.ErrorContains(t, err, "extension")
}

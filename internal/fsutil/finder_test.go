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
	require.NoError(t, os.WriteFile(path, []byte("# test\n"), 0o600))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.hcl"))
	writeFile(t, filepath.Join(root, "a.hcl"))
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "nested", "c.hcl"))
	writeFile(t, filepath.Join(root, ".git", "ignored.hcl"))

	t.Run("directory", func(t *testing.T) {
		files, err := FindFilesByExtension(root, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a.hcl"),
			filepath.Join(root, "b.hcl"),
			filepath.Join(root, "nested", "c.hcl"),
		}, files)
	})

	t.Run("single matching file", func(t *testing.T) {
		path := filepath.Join(root, "a.hcl")
		files, err := FindFilesByExtension(path, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("single non-matching file", func(t *testing.T) {
		files, err := FindFilesByExtension(filepath.Join(root, "notes.txt"), ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := FindFilesByExtension(filepath.Join(root, "nope"), ".hcl")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("empty extension panics", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
	})
}

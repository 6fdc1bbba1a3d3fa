package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMemFile(t *testing.T, mem afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, mem.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
}

func TestAferoFS_ReadFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeMemFile(t, mem, "/site/_data/site.json", `{"title":"x"}`)
	fsys := NewAferoFS(mem)

	t.Run("reads_existing_file", func(t *testing.T) {
		content, err := fsys.ReadFile("/site/_data/site.json")
		require.NoError(t, err)
		assert.Equal(t, `{"title":"x"}`, string(content))
	})

	t.Run("missing_file_is_not_exist", func(t *testing.T) {
		_, err := fsys.ReadFile("/site/_data/missing.json")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("directory_is_invalid", func(t *testing.T) {
		_, err := fsys.ReadFile("/site/_data")
		assert.ErrorIs(t, err, fs.ErrInvalid)
	})
}

func TestAferoFS_Glob(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeMemFile(t, mem, "/site/_data/site.json", `{}`)
	writeMemFile(t, mem, "/site/_data/nav/main.json", `{}`)
	writeMemFile(t, mem, "/site/_data/nav/notes.txt", `ignored`)
	writeMemFile(t, mem, "/site/_data/a/b/c.yaml", `k: v`)
	require.NoError(t, mem.MkdirAll("/site/_data/empty.json", 0755))
	fsys := NewAferoFS(mem)

	t.Run("recursive_json", func(t *testing.T) {
		got, err := fsys.Glob("/site/_data", "**/*.json")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join("/site/_data", "nav", "main.json"),
			filepath.Join("/site/_data", "site.json"),
		}, got)
	})

	t.Run("brace_alternatives", func(t *testing.T) {
		got, err := fsys.Glob("/site/_data", "**/*.{json,yaml}")
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Contains(t, got, filepath.Join("/site/_data", "a", "b", "c.yaml"))
	})

	t.Run("missing_root_yields_nothing", func(t *testing.T) {
		got, err := fsys.Glob("/site/nowhere", "**/*.json")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestNewOS_GlobRelativeRoot(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "_data", "nav"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "_data", "nav", "main.json"), []byte(`{}`), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	fsys := NewOS()

	got, err := fsys.Glob(".", "**/*.json")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("_data", "nav", "main.json")}, got)

	got, err = fsys.Glob("_data", "**/*.json")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("_data", "nav", "main.json")}, got)
}

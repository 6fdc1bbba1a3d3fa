package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/cascade/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

// NewOS creates a filesystem backed by the OS
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) Glob(root, pattern string) ([]string, error) {
	root = filepath.Clean(root)

	// BasePathFs compares cleaned prefixes, which "." never satisfies
	var base afero.Fs = a.fs
	if root != "." {
		base = afero.NewBasePathFs(a.fs, root)
	}

	matches, err := doublestar.Glob(afero.NewIOFS(base), filepath.ToSlash(pattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(matches))
	for i, match := range matches {
		paths[i] = filepath.Join(root, filepath.FromSlash(match))
	}
	sort.Strings(paths)
	return paths, nil
}

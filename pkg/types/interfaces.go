package types

import (
	"io/fs"
)

// FS is the read-side filesystem interface required by the data cascade
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Glob returns every regular file below root matching a doublestar
	// pattern (e.g. "**/*.json"). Returned paths are joined with root and
	// sorted lexicographically.
	Glob(root, pattern string) ([]string, error)
}

// DataMap is the generic tree-of-mappings value produced by parsing data files
type DataMap = map[string]interface{}

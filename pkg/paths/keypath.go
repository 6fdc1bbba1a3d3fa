package paths

import (
	"path/filepath"
	"strings"
)

// KeyPath is the nested-key address a global data file's contents are
// placed at
type KeyPath []string

// String joins the segments with dots, e.g. "nav.main"
func (k KeyPath) String() string {
	return strings.Join(k, ".")
}

// ObjectPathForDataFile maps a data file to its key path: the directories
// between dataDir and the file, then the file's base name without extension.
// "_data/nav/main.json" under "_data" maps to nav.main. Segments are kept
// verbatim, so a directory named "v1.2" stays a single segment.
//
// A file outside dataDir keeps its whole cleaned path as the directory part.
func ObjectPathForDataFile(file, dataDir string) KeyPath {
	file = filepath.Clean(file)
	rel, err := filepath.Rel(filepath.Clean(dataDir), file)
	if err != nil || isOutside(rel) {
		rel = file
	}

	var segments KeyPath
	if dir := filepath.Dir(rel); dir != "." {
		for _, segment := range strings.Split(dir, string(filepath.Separator)) {
			if segment != "" {
				segments = append(segments, segment)
			}
		}
	}
	return append(segments, trimExt(rel))
}

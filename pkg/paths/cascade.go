package paths

import (
	"path/filepath"
)

// LocalDataPaths lists the data files that cascade onto contentPath, lowest
// precedence first, so the file closest to the content ends up last.
//
// Candidates are the content file's sibling "<dir>/<name>.<ext>" plus
// "<d>/<base(d)>.<ext>" for every ancestor directory d strictly inside
// inputDir. Each location expands to one path per extension in configured
// order. A content path without a directory component has no candidates.
func LocalDataPaths(contentPath, inputDir string, exts []string) []string {
	dir := filepath.Dir(filepath.Clean(contentPath))
	if dir == "." {
		return nil
	}
	if inputDir == "" {
		inputDir = "."
	}
	inputDir = filepath.Clean(inputDir)

	// discovery order: most specific first
	bases := []string{filepath.Join(dir, trimExt(contentPath))}
	for d := dir; isWithin(d, inputDir); {
		bases = append(bases, filepath.Join(d, filepath.Base(d)))
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	bases = uniq(bases)
	reverse(bases)

	exts = NormalizeExtensions(exts)
	paths := make([]string, 0, len(bases)*len(exts))
	for _, base := range bases {
		for _, ext := range exts {
			paths = append(paths, base+"."+ext)
		}
	}
	return paths
}

func uniq(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func reverse(items []string) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

package paths

import (
	"path/filepath"
	"strings"
)

// DefaultDataExtension is used when no data extensions are configured
const DefaultDataExtension = "json"

// DataDir returns the global data directory for inputDir. An empty or "."
// dataName means the data directory is the input directory itself.
func DataDir(inputDir, dataName string) string {
	if inputDir == "" {
		inputDir = "."
	}
	if dataName == "" || dataName == "." {
		return filepath.Clean(inputDir)
	}
	return filepath.Join(inputDir, dataName)
}

// NormalizeExtensions strips leading dots and drops empty or repeated entries,
// keeping configured order. An empty result falls back to DefaultDataExtension.
func NormalizeExtensions(exts []string) []string {
	seen := make(map[string]bool, len(exts))
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	if len(out) == 0 {
		return []string{DefaultDataExtension}
	}
	return out
}

// isWithin reports whether dir lies strictly inside root
func isWithin(dir, root string) bool {
	if filepath.IsAbs(dir) != filepath.IsAbs(root) {
		absDir, errDir := filepath.Abs(dir)
		absRoot, errRoot := filepath.Abs(root)
		if errDir != nil || errRoot != nil {
			return false
		}
		dir, root = absDir, absRoot
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return rel != "." && !isOutside(rel)
}

func isOutside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// trimExt returns the base name of path without its last extension
func trimExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

package paths

import (
	"os"
	"path/filepath"
)

// ExpandPath expands a leading ~ and environment variables in path. The path
// is returned unchanged when the home directory cannot be determined.
func ExpandPath(path string) string {
	if path == "~" || len(path) > 1 && path[0] == '~' && path[1] == '/' {
		home, err := homeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return home, nil
	}
	if home = os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return "", err
}

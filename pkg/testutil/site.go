package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cascade/pkg/filesystem"
	"github.com/arthur-debert/cascade/pkg/types"
	"github.com/spf13/afero"
)

// EnvType selects where a Site lives
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // afero.MemMapFs, nothing touches the disk
	EnvIsolated                  // real filesystem in a temp directory
)

// MemoryRoot is the root of every in-memory site
const MemoryRoot = "/site"

// Site is a site tree for one test
type Site struct {
	Root string
	FS   afero.Fs
	Type EnvType

	t *testing.T
}

// NewSite creates a site holding files, keyed by slash-separated paths
// relative to the site root
func NewSite(t *testing.T, envType EnvType, files map[string]string) *Site {
	t.Helper()

	s := &Site{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		s.Root = t.TempDir()
		s.FS = afero.NewOsFs()
	default:
		s.Root = MemoryRoot
		s.FS = afero.NewMemMapFs()
		if err := s.FS.MkdirAll(s.Root, 0755); err != nil {
			t.Fatalf("Failed to create site root: %v", err)
		}
	}

	for rel, content := range files {
		s.Write(rel, content)
	}
	return s
}

// Path returns the absolute path of rel inside the site
func (s *Site) Path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

// Write creates or replaces a file, creating parent directories
func (s *Site) Write(rel, content string) string {
	s.t.Helper()

	path := s.Path(rel)
	if err := s.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		s.t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(s.FS, path, []byte(content), 0644); err != nil {
		s.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// Remove deletes a file or directory tree
func (s *Site) Remove(rel string) {
	s.t.Helper()

	if err := s.FS.RemoveAll(s.Path(rel)); err != nil {
		s.t.Fatalf("Failed to remove %s: %v", rel, err)
	}
}

// ReadFile returns the content of a site file
func (s *Site) ReadFile(rel string) string {
	s.t.Helper()

	content, err := afero.ReadFile(s.FS, s.Path(rel))
	if err != nil {
		s.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(content)
}

// DataFS returns the site as the filesystem data is read through
func (s *Site) DataFS() types.FS {
	return filesystem.NewAferoFS(s.FS)
}

// Chdir makes an isolated site the working directory for the rest of the
// test and points XDG state (the log file) into a temp directory
func (s *Site) Chdir() {
	s.t.Helper()

	if s.Type != EnvIsolated {
		s.t.Fatalf("Chdir needs an isolated site")
	}
	s.t.Chdir(s.Root)
	s.t.Setenv("XDG_STATE_HOME", s.t.TempDir())
}

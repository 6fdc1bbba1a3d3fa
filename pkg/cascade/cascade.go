package cascade

import (
	"path/filepath"
	"sync"

	"github.com/arthur-debert/cascade/pkg/config"
	"github.com/arthur-debert/cascade/pkg/engine"
	"github.com/arthur-debert/cascade/pkg/filesystem"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/arthur-debert/cascade/pkg/paths"
	"github.com/arthur-debert/cascade/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// globalReadConcurrency bounds concurrent global data file reads
const globalReadConcurrency = 8

// Cascade resolves the merged data for content files
type Cascade struct {
	cfg     config.Config
	fs      types.FS
	engines *engine.Registry
	workDir string
	logger  zerolog.Logger

	// mu guards the fields below it
	mu         sync.Mutex
	inputDir   string
	dataDir    string
	engineName string
	globalData types.DataMap
	generation uint64

	rebuild singleflight.Group

	importsMu      sync.Mutex
	fetchedImports bool
	rawImports     types.DataMap
	importsErr     error
}

// Option configures a Cascade
type Option func(*Cascade)

// WithFS sets the filesystem data is read from (default: the OS)
func WithFS(fsys types.FS) Option {
	return func(c *Cascade) { c.fs = fsys }
}

// WithEngines sets the registry template engines are looked up in
func WithEngines(r *engine.Registry) Option {
	return func(c *Cascade) { c.engines = r }
}

// WithWorkingDir sets the directory the manifest is read from (default ".")
func WithWorkingDir(dir string) Option {
	return func(c *Cascade) { c.workDir = dir }
}

// New creates a Cascade for cfg. The configuration is copied; later changes
// to cfg have no effect.
func New(cfg *config.Config, opts ...Option) (*Cascade, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Cascade{
		cfg:        *cfg,
		workDir:    ".",
		engineName: cfg.DataTemplateEngine,
		logger:     logging.GetLogger("cascade"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fs == nil {
		c.fs = filesystem.NewOS()
	}
	if c.engines == nil {
		c.engines = engine.DefaultRegistry()
	}
	c.setInputDirLocked(cfg.Dir.Input)
	return c, nil
}

// SetInputDir points the cascade at a new input root, recomputes the data
// directory and invalidates cached global data
func (c *Cascade) SetInputDir(inputDir string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setInputDirLocked(inputDir)
	c.clearLocked()
}

func (c *Cascade) setInputDirLocked(inputDir string) {
	c.inputDir = inputDir
	c.dataDir = paths.DataDir(inputDir, c.cfg.Dir.Data)
}

// SetDataTemplateEngine selects the engine global data files are rendered
// with; "" disables preprocessing. Cached global data is invalidated.
func (c *Cascade) SetDataTemplateEngine(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.engineName = name
	c.clearLocked()
}

// InputDir returns the input root
func (c *Cascade) InputDir() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inputDir
}

// DataDir returns the global data directory
func (c *Cascade) DataDir() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dataDir
}

// Extensions returns the data file extensions, lowest precedence first
func (c *Cascade) Extensions() []string {
	return c.cfg.Extensions()
}

// state is a consistent view of the mutable settings for one operation
type state struct {
	inputDir   string
	dataDir    string
	engineName string
}

func (c *Cascade) snapshot() state {
	c.mu.Lock()
	defer c.mu.Unlock()
	return state{inputDir: c.inputDir, dataDir: c.dataDir, engineName: c.engineName}
}

func (c *Cascade) manifestPath() string {
	return filepath.Join(c.workDir, c.cfg.PackageFile)
}

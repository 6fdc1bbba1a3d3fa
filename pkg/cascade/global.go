package cascade

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/cascade/pkg/datamap"
	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/arthur-debert/cascade/pkg/paths"
	"github.com/arthur-debert/cascade/pkg/types"
	"golang.org/x/sync/errgroup"
)

// GlobalDataPattern returns the doublestar pattern, relative to the data
// directory, that selects global data files
func (c *Cascade) GlobalDataPattern() string {
	exts := c.cfg.Extensions()
	if len(exts) == 1 {
		return "**/*." + exts[0]
	}
	return "**/*.{" + strings.Join(exts, ",") + "}"
}

// GlobalDataGlob returns the full glob for global data files. The input
// directory must exist.
func (c *Cascade) GlobalDataGlob() (string, error) {
	st := c.snapshot()
	if err := c.checkInputDir(st.inputDir); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(st.dataDir, c.GlobalDataPattern())), nil
}

// GetGlobalDataFiles lists the visible global data files in placement order:
// lexicographic by path without extension, then by configured extension
func (c *Cascade) GetGlobalDataFiles() ([]string, error) {
	return c.globalDataFiles(c.snapshot())
}

func (c *Cascade) globalDataFiles(st state) ([]string, error) {
	if err := c.checkInputDir(st.inputDir); err != nil {
		return nil, err
	}
	files, err := c.fs.Glob(st.dataDir, c.GlobalDataPattern())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDataGlob, "failed to list data files in %s", st.dataDir).
			WithDetail("dir", st.dataDir)
	}
	return c.orderGlobalDataFiles(visibleDataFiles(files, st.dataDir)), nil
}

// visibleDataFiles drops files with a hidden segment below dataDir
func visibleDataFiles(files []string, dataDir string) []string {
	visible := files[:0:0]
	for _, file := range files {
		rel, err := filepath.Rel(dataDir, file)
		if err != nil || hasHiddenSegment(rel) {
			continue
		}
		visible = append(visible, file)
	}
	return visible
}

func hasHiddenSegment(rel string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

// orderGlobalDataFiles sorts files so that, at one key path, a later
// configured extension is placed later and wins
func (c *Cascade) orderGlobalDataFiles(files []string) []string {
	rank := make(map[string]int)
	for i, ext := range c.cfg.Extensions() {
		rank[ext] = i
	}
	sort.SliceStable(files, func(i, j int) bool {
		stemI, extI := splitExt(files[i])
		stemJ, extJ := splitExt(files[j])
		if stemI != stemJ {
			return stemI < stemJ
		}
		return rank[extI] < rank[extJ]
	})
	return files
}

func splitExt(file string) (string, string) {
	ext := filepath.Ext(file)
	return strings.TrimSuffix(file, ext), strings.ToLower(strings.TrimPrefix(ext, "."))
}

// checkInputDir fails unless inputDir exists and is a directory
func (c *Cascade) checkInputDir(inputDir string) error {
	if inputDir == "" {
		return nil
	}
	info, err := c.fs.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrDataDirNotFound, "could not find data path directory: %s", inputDir).
			WithDetail("dir", inputDir)
	}
	return nil
}

// ConfigData returns a copy of the configuration-supplied data
func (c *Cascade) ConfigData() (types.DataMap, error) {
	data, err := c.cfg.ResolveConfigData()
	if err != nil {
		return nil, err
	}
	return datamap.CopyMap(data), nil
}

// GetAllGlobalData builds global data from scratch: every global data file
// placed at its key path in GetGlobalDataFiles order, then configuration
// data merged on top. Files are read concurrently but placed sequentially.
func (c *Cascade) GetAllGlobalData(ctx context.Context) (types.DataMap, error) {
	return c.allGlobalData(ctx, c.snapshot())
}

func (c *Cascade) allGlobalData(ctx context.Context, st state) (types.DataMap, error) {
	done := logging.LogOperationStart(c.logger, "global-data")
	defer done()

	imports, err := c.GetRawImports(ctx)
	if err != nil {
		return nil, err
	}
	files, err := c.globalDataFiles(st)
	if err != nil {
		return nil, err
	}
	reader, err := c.globalReader(st.engineName)
	if err != nil {
		return nil, err
	}

	contents := make([]interface{}, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(globalReadConcurrency)
	for i, file := range files {
		g.Go(func() error {
			value, err := reader.Read(gctx, file, imports, false)
			if err != nil {
				return err
			}
			contents[i] = value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	globalData := types.DataMap{}
	for i, file := range files {
		keyPath := paths.ObjectPathForDataFile(file, st.dataDir)
		c.logger.Debug().
			Str("file", file).
			Str("key", keyPath.String()).
			Msg("Found global data file")
		datamap.SetPath(globalData, keyPath, contents[i])
	}

	configData, err := c.ConfigData()
	if err != nil {
		return nil, err
	}
	return datamap.Merge(globalData, configData), nil
}

// globalReader returns a reader rendering with the named engine, or a plain
// reader when name is empty
func (c *Cascade) globalReader(name string) (*Reader, error) {
	if name == "" {
		return NewReader(c.fs, nil), nil
	}
	eng, err := c.engines.Get(name)
	if err != nil {
		return nil, err
	}
	return NewReader(c.fs, eng), nil
}

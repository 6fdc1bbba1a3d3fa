package cascade

import (
	"context"

	"github.com/arthur-debert/cascade/pkg/datamap"
	"github.com/arthur-debert/cascade/pkg/paths"
	"github.com/arthur-debert/cascade/pkg/types"
)

// LocalDataPaths lists the local data candidates for contentPath, most
// specific last
func (c *Cascade) LocalDataPaths(contentPath string) []string {
	inputDir := c.InputDir()
	candidates := paths.LocalDataPaths(contentPath, inputDir, c.cfg.Extensions())
	c.logger.Trace().
		Str("content", contentPath).
		Str("input", inputDir).
		Strs("paths", candidates).
		Msg("Resolved local data paths")
	return candidates
}

// CombineLocalData reads each path as raw data, without template
// preprocessing, and merges them in order so later paths win. Missing files
// and candidates that are directories contribute nothing.
func (c *Cascade) CombineLocalData(ctx context.Context, localPaths []string) (types.DataMap, error) {
	reader := NewReader(c.fs, nil)
	localData := types.DataMap{}
	for _, path := range localPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if info, err := c.fs.Stat(path); err == nil && info.IsDir() {
			c.logger.Trace().Str("path", path).Msg("Skipping directory local data candidate")
			continue
		}
		dataForPath, err := reader.ReadMap(ctx, path, nil, true)
		if err != nil {
			return nil, err
		}
		datamap.Merge(localData, dataForPath)
	}
	return localData, nil
}

// GetLocalData returns the merged data for contentPath: cached global data
// (with imports) overridden by the content file's local data
func (c *Cascade) GetLocalData(ctx context.Context, contentPath string) (types.DataMap, error) {
	localData, err := c.CombineLocalData(ctx, c.LocalDataPaths(contentPath))
	if err != nil {
		return nil, err
	}
	globalData, err := c.GetData(ctx)
	if err != nil {
		return nil, err
	}
	return datamap.Merge(types.DataMap{}, globalData, localData), nil
}

package cascade

import (
	"context"
	"strconv"

	"github.com/arthur-debert/cascade/pkg/datamap"
	"github.com/arthur-debert/cascade/pkg/types"
)

// GetData returns global data merged with the imported metadata, building
// and caching it on first use. While cached, every call returns the same
// mapping; callers must not modify it.
//
// Concurrent callers in one generation share a single rebuild. The rebuild
// ignores caller cancellation; a cancelled caller stops waiting and the
// others still receive the result. A rebuild that finishes after ClearData is
// returned to its callers but not cached.
func (c *Cascade) GetData(ctx context.Context) (types.DataMap, error) {
	c.mu.Lock()
	if c.globalData != nil {
		data := c.globalData
		c.mu.Unlock()
		return data, nil
	}
	generation := c.generation
	st := state{inputDir: c.inputDir, dataDir: c.dataDir, engineName: c.engineName}
	c.mu.Unlock()

	buildCtx := context.WithoutCancel(ctx)
	result := c.rebuild.DoChan(strconv.FormatUint(generation, 10), func() (interface{}, error) {
		return c.buildData(buildCtx, st, generation)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(types.DataMap), nil
	}
}

func (c *Cascade) buildData(ctx context.Context, st state, generation uint64) (types.DataMap, error) {
	globalData, err := c.allGlobalData(ctx, st)
	if err != nil {
		return nil, err
	}
	imports, err := c.GetRawImports(ctx)
	if err != nil {
		return nil, err
	}
	data := datamap.Merge(types.DataMap{}, globalData, imports)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation == generation {
		c.globalData = data
	}
	return data, nil
}

// ClearData invalidates cached global data; the next GetData rebuilds it.
// Imported metadata stays cached.
func (c *Cascade) ClearData() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Cascade) clearLocked() {
	c.globalData = nil
	c.generation++
}

// CacheData rebuilds global data and returns it
func (c *Cascade) CacheData(ctx context.Context) (types.DataMap, error) {
	c.ClearData()
	return c.GetData(ctx)
}

// GetRawImports returns the imported metadata, {keys.package: manifest},
// fetching it on first use. A missing manifest yields an empty manifest. The
// fetch happens at most once per Cascade, failures included.
func (c *Cascade) GetRawImports(ctx context.Context) (types.DataMap, error) {
	c.importsMu.Lock()
	defer c.importsMu.Unlock()

	if !c.fetchedImports {
		c.fetchedImports = true
		c.rawImports, c.importsErr = c.fetchImports(ctx)
	}
	return c.rawImports, c.importsErr
}

func (c *Cascade) fetchImports(ctx context.Context) (types.DataMap, error) {
	path := c.manifestPath()
	manifest, err := NewReader(c.fs, nil).ReadMap(ctx, path, nil, true)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().
		Str("path", path).
		Str("key", c.cfg.Keys.Package).
		Int("fields", len(manifest)).
		Msg("Imported manifest")
	return types.DataMap{c.cfg.Keys.Package: manifest}, nil
}

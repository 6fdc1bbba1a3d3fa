package cascade

import (
	"context"
	"testing"

	"github.com/arthur-debert/cascade/pkg/config"
	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDataPaths(t *testing.T) {
	c := newMemCascade(t, newSite(t, nil), nil)

	got := c.LocalDataPaths(sitePath("pages/blog/post1.md"))
	assert.Equal(t, []string{
		sitePath("pages/pages.json"),
		sitePath("pages/blog/blog.json"),
		sitePath("pages/blog/post1.json"),
	}, got)
}

func TestCombineLocalData(t *testing.T) {
	ctx := context.Background()
	mem := newSite(t, map[string]string{
		"pages/pages.json":      `{"layout":"page","tags":["pages"],"meta":{"a":1,"b":1}}`,
		"pages/blog/blog.json":  `{"layout":"post","tags":["blog"],"meta":{"b":2}}`,
		"pages/blog/post1.json": `{"title":"Post 1"}`,
	})
	c := newMemCascade(t, mem, nil)

	local, err := c.CombineLocalData(ctx, c.LocalDataPaths(sitePath("pages/blog/post1.md")))
	require.NoError(t, err)
	assert.Equal(t, types.DataMap{
		"layout": "post",
		"tags":   []interface{}{"blog"},
		"meta":   map[string]interface{}{"a": float64(1), "b": float64(2)},
		"title":  "Post 1",
	}, local)

	t.Run("missing_files_contribute_nothing", func(t *testing.T) {
		local, err := c.CombineLocalData(ctx, []string{sitePath("none/none.json")})
		require.NoError(t, err)
		assert.Equal(t, types.DataMap{}, local)
	})

	t.Run("directory_candidate_contributes_nothing", func(t *testing.T) {
		require.NoError(t, mem.FS.MkdirAll(sitePath("pages/drafts/drafts.json"), 0755))
		local, err := c.CombineLocalData(ctx, []string{
			sitePath("pages/pages.json"),
			sitePath("pages/drafts/drafts.json"),
		})
		require.NoError(t, err)
		assert.Equal(t, "page", local["layout"])
	})

	t.Run("cancelled_context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := c.CombineLocalData(cctx, []string{sitePath("pages/pages.json")})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGetLocalData(t *testing.T) {
	ctx := context.Background()

	t.Run("local_overrides_global", func(t *testing.T) {
		mem := newSite(t, map[string]string{
			"_data/title.json":      `"B"`,
			"_data/nav.json":        `{"a":{"b":"global","c":"kept"}}`,
			"pages/blog/blog.json":  `{"nav":{"a":{"b":"local"}}}`,
			"pages/blog/post1.json": `{"title":"A"}`,
		})
		c := newMemCascade(t, mem, nil)

		data, err := c.GetLocalData(ctx, sitePath("pages/blog/post1.md"))
		require.NoError(t, err)
		assert.Equal(t, "A", data["title"])
		assert.Equal(t, map[string]interface{}{"b": "local", "c": "kept"}, data["nav"].(map[string]interface{})["a"])
	})

	t.Run("nothing_but_imports", func(t *testing.T) {
		mem := newSite(t, map[string]string{"package.json": `{"name":"my-site"}`})
		c := newMemCascade(t, mem, nil)

		imports, err := c.GetRawImports(ctx)
		require.NoError(t, err)
		data, err := c.GetLocalData(ctx, sitePath("pages/post.md"))
		require.NoError(t, err)
		assert.Equal(t, imports, data)
	})

	t.Run("result_does_not_alias_cache", func(t *testing.T) {
		mem := newSite(t, map[string]string{"_data/site.json": `{"title":"Site"}`})
		c := newMemCascade(t, mem, nil)

		data, err := c.GetLocalData(ctx, sitePath("index.md"))
		require.NoError(t, err)
		data["site"].(map[string]interface{})["title"] = "mutated"

		global, err := c.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Site", global["site"].(map[string]interface{})["title"])
	})

	t.Run("local_is_read_fresh", func(t *testing.T) {
		mem := newSite(t, map[string]string{"pages/post.json": `{"v":1}`})
		c := newMemCascade(t, mem, nil)

		data, err := c.GetLocalData(ctx, sitePath("pages/post.md"))
		require.NoError(t, err)
		assert.Equal(t, float64(1), data["v"])

		mem.Write("pages/post.json", `{"v":2}`)
		data, err = c.GetLocalData(ctx, sitePath("pages/post.md"))
		require.NoError(t, err)
		assert.Equal(t, float64(2), data["v"])
	})

	t.Run("yaml_local_overrides_json_at_same_level", func(t *testing.T) {
		mem := newSite(t, map[string]string{
			"pages/post.json": `{"v":"json","only_json":true}`,
			"pages/post.yaml": "v: yaml\n",
		})
		c := newMemCascade(t, mem, func(cfg *config.Config) { cfg.DataExtensions = []string{"json", "yaml"} })

		data, err := c.GetLocalData(ctx, sitePath("pages/post.md"))
		require.NoError(t, err)
		assert.Equal(t, "yaml", data["v"])
		assert.Equal(t, true, data["only_json"])
	})

	t.Run("local_file_must_be_mapping", func(t *testing.T) {
		mem := newSite(t, map[string]string{"pages/post.json": `[1]`})
		c := newMemCascade(t, mem, nil)
		_, err := c.GetLocalData(ctx, sitePath("pages/post.md"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrDataParse))
	})

	t.Run("malformed_local_file_is_fatal", func(t *testing.T) {
		mem := newSite(t, map[string]string{"pages/pages.json": `{`})
		c := newMemCascade(t, mem, nil)
		_, err := c.GetLocalData(ctx, sitePath("pages/post.md"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrDataParse))
	})

	t.Run("global_and_local_agree_on_extension_precedence", func(t *testing.T) {
		mem := newSite(t, map[string]string{
			"_data/a.json":    `{"v":"json"}`,
			"_data/a.yaml":    "v: yaml\n",
			"pages/post.json": `{"v":"json"}`,
			"pages/post.yaml": "v: yaml\n",
		})
		c := newMemCascade(t, mem, func(cfg *config.Config) { cfg.DataExtensions = []string{"yaml", "json"} })

		data, err := c.GetLocalData(ctx, sitePath("pages/post.md"))
		require.NoError(t, err)
		assert.Equal(t, "json", data["v"])
		assert.Equal(t, map[string]interface{}{"v": "json"}, data["a"])
	})
}

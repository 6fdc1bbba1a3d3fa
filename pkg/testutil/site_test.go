package testutil_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cascade/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSite(t *testing.T) {
	files := map[string]string{
		"package.json":        `{"name":"my-site"}`,
		"_data/nav/main.json": `{"items":[]}`,
	}

	for _, envType := range []testutil.EnvType{testutil.EnvMemoryOnly, testutil.EnvIsolated} {
		site := testutil.NewSite(t, envType, files)

		assert.Equal(t, `{"name":"my-site"}`, site.ReadFile("package.json"))

		data, err := site.DataFS().ReadFile(site.Path("_data/nav/main.json"))
		require.NoError(t, err)
		assert.Equal(t, `{"items":[]}`, string(data))

		site.Write("_data/site.json", `{}`)
		matches, err := site.DataFS().Glob(site.Path("_data"), "**/*.json")
		require.NoError(t, err)
		assert.Len(t, matches, 2)

		site.Remove("_data/nav")
		_, err = site.DataFS().ReadFile(site.Path("_data/nav/main.json"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	}
}

func TestSite_Roots(t *testing.T) {
	mem := testutil.NewSite(t, testutil.EnvMemoryOnly, nil)
	assert.Equal(t, testutil.MemoryRoot, mem.Root)
	assert.Equal(t, filepath.Join(testutil.MemoryRoot, "a", "b.json"), mem.Path("a/b.json"))

	disk := testutil.NewSite(t, testutil.EnvIsolated, map[string]string{"x.json": "{}"})
	_, err := os.Stat(disk.Path("x.json"))
	assert.NoError(t, err)
}

func TestSite_Chdir(t *testing.T) {
	site := testutil.NewSite(t, testutil.EnvIsolated, map[string]string{"here.json": "{}"})
	site.Chdir()

	_, err := os.Stat("here.json")
	assert.NoError(t, err)
	assert.NotEmpty(t, os.Getenv("XDG_STATE_HOME"))
}

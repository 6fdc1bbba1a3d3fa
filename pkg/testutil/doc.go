// Package testutil builds throwaway site trees for tests.
//
// A Site is a directory of content, data files and a manifest, either in
// memory (EnvMemoryOnly, afero.MemMapFs rooted at /site) or on disk
// (EnvIsolated, a t.TempDir). Prefer memory sites; use isolated ones only for
// code that goes through the OS, such as the CLI.
//
// All test data is defined inline:
//
//	site := testutil.NewSite(t, testutil.EnvMemoryOnly, map[string]string{
//		"package.json":    `{"name":"my-site"}`,
//		"_data/site.json": `{"title":"Site"}`,
//	})
package testutil

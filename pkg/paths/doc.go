// Package paths derives every path the data cascade works with.
//
// Three mappings live here:
//   - DataDir: the global data root for an input directory
//   - ObjectPathForDataFile: a global data file's location below the data
//     root, turned into the key path its contents are placed at
//   - LocalDataPaths: the ordered candidate data files that cascade onto a
//     single content file, from its directory up to the input root
//
// All functions are pure; nothing here touches the filesystem.
package paths

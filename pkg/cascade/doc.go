// Package cascade assembles the data a content file is rendered with.
//
// Three layers are combined, lowest precedence first:
//
//	global   every file below the data directory, placed at the key path
//	         derived from its location, then configuration data on top
//	imports  the project manifest, exposed under keys.package
//	local    data files beside the content file and in each ancestor
//	         directory inside the input root, closest last
//
// Global data (with imports) is cached per build generation. ClearData
// starts a new generation; local data is read fresh on every request.
package cascade

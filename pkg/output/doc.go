// Package output renders cascade data for people and for other programs.
//
// Structured formats (json, yaml, toml, xml) are meant to be piped. The tree
// format draws nested data with pterm and styles keys with lipgloss; it is
// the default when stdout is a terminal.
package output

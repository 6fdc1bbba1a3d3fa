// Package types defines the core types and interfaces shared across the
// cascade packages: the read-only filesystem contract and the generic
// data mapping every data file decodes into.
package types

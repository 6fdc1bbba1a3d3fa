// Package filesystem provides filesystem implementations for cascade.
//
// This package contains implementations of the types.FS interface backed
// by afero, for both the OS filesystem and in-memory test filesystems.
package filesystem

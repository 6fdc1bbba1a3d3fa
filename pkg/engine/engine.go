// Package engine defines the template-engine collaborator used to preprocess
// global data files, and a registry to select engines by name.
//
// An engine compiles raw data-file text once and returns a RenderFunc. The
// render function is invoked with the imported metadata as its only data;
// its output is then parsed as structured data by the caller.
package engine

import (
	"context"

	"github.com/arthur-debert/cascade/pkg/types"
)

// RenderFunc executes a compiled template against data
type RenderFunc func(ctx context.Context, data types.DataMap) (string, error)

// Engine compiles raw template text
type Engine interface {
	// Name is the key the engine is selected by in configuration
	Name() string

	// Compile parses raw template text
	Compile(raw string) (RenderFunc, error)
}

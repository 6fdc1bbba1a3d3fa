package main

import (
	"os"

	"github.com/arthur-debert/cascade/internal/cli"
	"github.com/arthur-debert/cascade/pkg/output"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_ = output.NewRenderer(os.Stderr, output.FormatJSON, false).RenderError(err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cascade/internal/cli"
	"github.com/arthur-debert/cascade/internal/version"
)

// Writes the top-level man page to stdout, for packaging
func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CASCADE",
		Section: "1",
		Source:  "cascade " + version.Version,
		Manual:  "cascade manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

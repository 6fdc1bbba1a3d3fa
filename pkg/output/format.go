package output

import (
	"os"
	"strings"

	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format is an output format
type Format int

const (
	// FormatAuto picks FormatTree on a terminal and FormatJSON otherwise
	FormatAuto Format = iota
	FormatTree
	FormatJSON
	FormatYAML
	FormatTOML
	FormatXML
)

// FormatNames lists the accepted format names
var FormatNames = []string{"auto", "tree", "json", "yaml", "toml", "xml"}

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTree:
		return "tree"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "tree":
		return FormatTree, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrOutputFormat, "unknown format: %s", s).
			WithDetail("available", FormatNames)
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectFormat resolves FormatAuto for output written to f
func DetectFormat(f *os.File) Format {
	if IsTerminal(f) {
		return FormatTree
	}
	return FormatJSON
}

// ColorDisabled reports whether styling should be off for output written to
// f: when asked to, when NO_COLOR or CLICOLOR=0 is set, when f is not a
// terminal, or when the terminal has no colour support
func ColorDisabled(noColor bool, f *os.File) bool {
	if noColor || termenv.EnvNoColor() {
		return true
	}
	if !IsTerminal(f) {
		return true
	}
	return termenv.NewOutput(f).EnvColorProfile() == termenv.Ascii
}

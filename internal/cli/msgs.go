package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve the data cascade of a static site"
	MsgDataShort       = "Print merged data, optionally for one content file"
	MsgGlobalShort     = "Print global data without the manifest"
	MsgGlobalLong      = "Print the data assembled from the data directory, with configuration data merged on top. The manifest is not included."
	MsgFilesShort      = "List global data files and their key paths"
	MsgPathsShort      = "List local data files for a content file"
	MsgVersionShort    = "Print version information"
	MsgManShort        = "Generate man pages into a directory"
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "cascade version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"

	// Error messages
	MsgErrManDir = "failed to create man page directory %s"
	MsgErrManGen = "failed to generate man pages"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagInput   = "Input directory content paths are resolved against"
	MsgFlagDataDir = "Data directory name below the input directory (\"\" = the input directory)"
	MsgFlagEngine  = "Template engine global data files are rendered with (\"\" = none)"
	MsgFlagFormat  = "Output format: auto, tree, json, yaml, toml or xml"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagExt     = "Data file extensions, lowest precedence first"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/data-long.txt
	msgDataLongRaw string
	MsgDataLong    = strings.TrimSpace(msgDataLongRaw)

	//go:embed msgs/data-example.txt
	msgDataExampleRaw string
	MsgDataExample    = strings.TrimRight(msgDataExampleRaw, "\n")

	//go:embed msgs/paths-long.txt
	msgPathsLongRaw string
	MsgPathsLong    = strings.TrimSpace(msgPathsLongRaw)
)

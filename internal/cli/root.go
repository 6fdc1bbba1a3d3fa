package cli

import (
	"github.com/arthur-debert/cascade/internal/version"
	"github.com/arthur-debert/cascade/pkg/cascade"
	"github.com/arthur-debert/cascade/pkg/config"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/arthur-debert/cascade/pkg/output"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the values of the persistent flags
type rootOptions struct {
	verbosity  int
	inputDir   string
	dataDir    string
	engine     string
	extensions []string
	format     string
	noColor    bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "cascade",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			// .env never overrides variables already set
			if err := godotenv.Load(); err == nil {
				log.Debug().Msg("Loaded .env")
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetUsageTemplate(usageTemplate)

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.inputDir, "input", "i", ".", MsgFlagInput)
	flags.StringVar(&opts.dataDir, "data-dir", "_data", MsgFlagDataDir)
	flags.StringVar(&opts.engine, "engine", "", MsgFlagEngine)
	flags.StringSliceVar(&opts.extensions, "ext", []string{"json"}, MsgFlagExt)
	flags.StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return output.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(
		&cobra.Group{ID: "data", Title: "Data Commands:"},
		&cobra.Group{ID: "misc", Title: "Misc Commands:"},
	)

	rootCmd.AddCommand(newDataCmd(opts))
	rootCmd.AddCommand(newGlobalCmd(opts))
	rootCmd.AddCommand(newFilesCmd(opts))
	rootCmd.AddCommand(newPathsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// overrides turns the flags set on the command line into configuration
// overrides; flags left at their defaults do not shadow the config file
func (o *rootOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	overrides := make(map[string]interface{})
	if flags.Changed("input") {
		overrides["dir.input"] = o.inputDir
	}
	if flags.Changed("data-dir") {
		overrides["dir.data"] = o.dataDir
	}
	if flags.Changed("engine") {
		overrides["data_template_engine"] = o.engine
	}
	if flags.Changed("ext") {
		overrides["data_extensions"] = o.extensions
	}
	return overrides
}

// newCascade loads configuration from the working directory and the flags
func (o *rootOptions) newCascade(cmd *cobra.Command) (*cascade.Cascade, error) {
	cfg, err := config.LoadConfiguration(".", o.overrides(cmd))
	if err != nil {
		return nil, err
	}
	return cascade.New(cfg)
}

func (o *rootOptions) renderer(cmd *cobra.Command) (*output.Renderer, error) {
	format, err := output.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	return output.NewRenderer(cmd.OutOrStdout(), format, o.noColor), nil
}

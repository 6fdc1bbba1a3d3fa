package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cascade/internal/version"
	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/arthur-debert/cascade/pkg/paths"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newDataCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "data [content-path]",
		Short:   MsgDataShort,
		Long:    MsgDataLong,
		Example: MsgDataExample,
		GroupID: "data",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newCascade(cmd)
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if len(args) == 0 {
				data, err := c.GetData(ctx)
				if err != nil {
					return err
				}
				return r.Render(data)
			}

			logger := logging.GetLogger("cli.data")
			logger.Info().Str("content", args[0]).Msg("Resolving local data")
			data, err := c.GetLocalData(ctx, args[0])
			if err != nil {
				return err
			}
			return r.Render(data)
		},
	}
}

func newGlobalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "global",
		Short:   MsgGlobalShort,
		Long:    MsgGlobalLong,
		GroupID: "data",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newCascade(cmd)
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			data, err := c.GetAllGlobalData(cmd.Context())
			if err != nil {
				return err
			}
			return r.Render(data)
		},
	}
}

func newFilesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "files",
		Short:   MsgFilesShort,
		GroupID: "data",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newCascade(cmd)
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			glob, err := c.GlobalDataGlob()
			if err != nil {
				return err
			}
			files, err := c.GetGlobalDataFiles()
			if err != nil {
				return err
			}

			dataDir := c.DataDir()
			entries := make([]interface{}, 0, len(files))
			for _, file := range files {
				entries = append(entries, map[string]interface{}{
					"file": file,
					"key":  paths.ObjectPathForDataFile(file, dataDir).String(),
				})
			}
			return r.Render(map[string]interface{}{
				"glob":  glob,
				"files": entries,
			})
		},
	}
}

func newPathsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "paths <content-path>",
		Short:   MsgPathsShort,
		Long:    MsgPathsLong,
		GroupID: "data",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newCascade(cmd)
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			candidates := c.LocalDataPaths(args[0])
			list := make([]interface{}, len(candidates))
			for i, p := range candidates {
				list[i] = p
			}
			return r.Render(map[string]interface{}{
				"content": args[0],
				"paths":   list,
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, MsgErrManDir, dir)
			}
			header := &doc.GenManHeader{
				Title:   "CASCADE",
				Section: "1",
				Source:  "cascade " + version.Version,
				Manual:  "cascade manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrManGen)
			}
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

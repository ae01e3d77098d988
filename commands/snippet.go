package commands

import (
	"github.com/spf13/cobra"

	"github.com/hannajonsd/hookdeps/config"
)

// NewSnippetCommand creates the snippet subcommand.
func NewSnippetCommand(opts *Options) *cobra.Command {
	var (
		output      string
		packageName string
	)

	cmd := &cobra.Command{
		Use:   "snippet <hook>",
		Short: "Print a hook's source as shipped in the published package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ha, _, err := opts.newAnalyzer(cmd.ErrOrStderr(), func(cfg *config.Config) {
				if packageName != "" {
					cfg.Snippet.PackageName = packageName
				}
			})
			if err != nil {
				return err
			}

			out, err := ha.Snippet(args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, []byte(out))
		},
	}

	cmd.Flags().StringVarP(&output, outputFlag, outputShort, "", "output file (default stdout)")
	cmd.Flags().StringVar(&packageName, "package", "", "package the relative hook imports are rewritten to")

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/hannajonsd/hookdeps/config"
)

// NewSidebarCommand creates the sidebar subcommand.
func NewSidebarCommand(opts *Options) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "sidebar",
		Short: "Generate the documentation sidebar for the hooks directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ha, cfg, err := opts.newAnalyzer(cmd.ErrOrStderr(), func(cfg *config.Config) {
				if format != "" {
					cfg.Sidebar.Format = format
				}
			})
			if err != nil {
				return err
			}

			sb, err := ha.Sidebar()
			if err != nil {
				return err
			}

			data, err := sb.Marshal(cfg.Sidebar.Format)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}

	cmd.Flags().StringVarP(&output, outputFlag, outputShort, "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "", "yaml or json (overrides config)")

	return cmd
}

package commands

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/hannajonsd/hookdeps/analyzer"
)

// NewGraphCommand creates the graph subcommand.
func NewGraphCommand(opts *Options) *cobra.Command {
	var dotPath string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Report cycles and order between hooks, optionally as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ha, _, err := opts.newAnalyzer(cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}

			hg, err := ha.Graph()
			if err != nil {
				return err
			}

			if dotPath != "" {
				var buf bytes.Buffer
				if err := hg.WriteDOT(&buf); err != nil {
					return err
				}
				if err := writeOutput(cmd.OutOrStdout(), dotPath, buf.Bytes()); err != nil {
					return err
				}
				if dotPath == stdoutPath {
					return nil
				}
			}

			return analyzer.DisplayGraphSummary(cmd.OutOrStdout(), hg)
		},
	}

	cmd.Flags().StringVar(&dotPath, "dot", "", `write the graph in DOT format to this file ("-" for stdout)`)

	return cmd
}

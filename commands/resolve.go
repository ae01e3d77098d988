package commands

import (
	"github.com/spf13/cobra"

	"github.com/hannajonsd/hookdeps/analyzer"
	"github.com/hannajonsd/hookdeps/manifest"
)

// NewResolveCommand creates the resolve subcommand.
func NewResolveCommand(opts *Options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve <hook>",
		Short: "Show the files and packages a hook depends on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ha, _, err := opts.newAnalyzer(cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}

			closure, err := ha.Resolve(args[0])
			if err != nil {
				return err
			}

			if !asJSON {
				analyzer.DisplayClosure(cmd.OutOrStdout(), closure, ha.Versions())
				return nil
			}

			data, err := manifest.Encode(manifest.NewRecord(closure), true)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), "", data)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the manifest record instead of a table")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInstallCommand creates the install subcommand.
func NewInstallCommand(opts *Options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "install <hook>",
		Short: "Print the docs code group installing a hook's packages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ha, _, err := opts.newAnalyzer(cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}

			group, err := ha.InstallGroup(args[0])
			if err != nil {
				return err
			}
			if group == "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s has no external dependencies\n", ha.UnitName(args[0]))
				return nil
			}

			return writeOutput(cmd.OutOrStdout(), output, []byte(group+"\n"))
		},
	}

	cmd.Flags().StringVarP(&output, outputFlag, outputShort, "", "output file (default stdout)")

	return cmd
}

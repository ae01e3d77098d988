package commands

import (
	"github.com/spf13/cobra"

	"github.com/hannajonsd/hookdeps/analyzer"
	"github.com/hannajonsd/hookdeps/config"
)

// NewManifestCommand creates the manifest subcommand. It exits non-zero when
// any hook failed, after every other manifest has been written.
func NewManifestCommand(opts *Options) *cobra.Command {
	var (
		outputDir string
		indent    bool
	)

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Write one JSON manifest per hook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ha, _, err := opts.newAnalyzer(cmd.ErrOrStderr(), func(cfg *config.Config) {
				if outputDir != "" {
					cfg.Manifest.OutputDir = outputDir
				}
				if indent {
					cfg.Manifest.Indent = true
				}
			})
			if err != nil {
				return err
			}

			result, err := ha.EmitManifests()
			if err != nil {
				return err
			}

			analyzer.DisplayEmitResult(cmd.OutOrStdout(), result)
			return result.Err()
		},
	}

	cmd.Flags().StringVarP(&outputDir, outputFlag, outputShort, "", "manifest output directory (overrides config)")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the JSON records")

	return cmd
}

// Package main provides the entry point for the hookdeps CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hannajonsd/hookdeps/commands"
)

// Set at build time with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "none"
)

func main() {
	opts := &commands.Options{}

	rootCmd := &cobra.Command{
		Use:   "hookdeps",
		Short: "Resolve and publish the dependencies of a hooks directory",
		Long: `hookdeps scans a directory of useXxx hooks, resolves the hooks and packages
each one depends on and writes the manifests used to scaffold them elsewhere.

Commands:
  resolve   Show one hook's files and packages
  manifest  Write a JSON manifest per hook
  graph     Report cycles and order between hooks
  sidebar   Generate the documentation sidebar
  snippet   Print a hook as shipped in the published package
  install   Print the install code group for a hook's packages`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default .hookdeps.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(commands.NewResolveCommand(opts))
	rootCmd.AddCommand(commands.NewManifestCommand(opts))
	rootCmd.AddCommand(commands.NewGraphCommand(opts))
	rootCmd.AddCommand(commands.NewSidebarCommand(opts))
	rootCmd.AddCommand(commands.NewSnippetCommand(opts))
	rootCmd.AddCommand(commands.NewInstallCommand(opts))
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hookdeps %s (commit: %s)\n", version, commit)
		},
	}
}

// Package cli provides the command-line interface for huecount.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecount/internal/version"
)

// globalOptions are shared by every command.
type globalOptions struct {
	verbose    bool
	quiet      bool
	configFile string
}

// NewRootCmd builds the huecount command tree. Running the root command
// without a subcommand analyses an image exactly like "huecount analyse".
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}
	opts := &analyseOptions{}

	rootCmd := &cobra.Command{
		Use:   "huecount [image]",
		Short: "Report the most common colours in an image",
		Long: `huecount reads an image, drops near-white and near-black pixels (and
optionally near-gray ones), counts the exact RGB colours that remain and
prints the most frequent ones with their hex codes.

Without arguments it analyses public/logo-med.png with the basic filter.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      version.Short(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyse(cmd, g, args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/huecount/config.yaml)")
	addAnalyseFlags(rootCmd, opts)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newAnalyseCmd(g))
	rootCmd.AddCommand(newFiltersCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

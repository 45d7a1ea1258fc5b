package commands

import (
	"github.com/Cooolrik/stle"
	"github.com/Cooolrik/stle/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the stle CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "stle",
		Short: "Code-generation toolkit for C/C++ source trees",
		Long: `stle keeps generated C/C++ sources consistent and checked in cleanly.

It generates boilerplate headers from the builder library, writes files
only when their content actually changed (leaving generated output
read-only), and verifies that every source file carries the expected
license header and header guard.

Common commands:
  stle init             write a default stle.yml for this tree
  stle check            verify license headers and header guards
  stle generate macros  regenerate the convenience-macro headers`,
		Version: stle.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/Cooolrik/stle/checker"
	"github.com/Cooolrik/stle/input"
	"github.com/Cooolrik/stle/output"
	"github.com/Cooolrik/stle/project"
	"github.com/spf13/cobra"
)

// CheckCmd creates and returns the 'check' command for header conformance
func CheckCmd() *cobra.Command {
	var fix, yes bool

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Verify license headers and header guards in the source tree",
		Long: `Check every source file under the configured source directories for the
canonical license header, and every header file additionally for
#pragma once and a matching header guard.

With --fix, non-conforming files are rewritten in place; stle asks per
file unless --yes is given. Exits non-zero when violations remain.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := project.Load(root)
			if err != nil {
				return err
			}
			output.Verbose(fmt.Sprintf("checking project %q under %s", cfg.Project, root))

			if !fix {
				violations, err := checker.CheckTree(root, cfg)
				if err != nil {
					return err
				}
				return reportViolations(violations)
			}

			var confirm func(string) bool
			if !yes {
				confirm = func(path string) bool {
					return input.Confirm("Fix "+path+"?", true)
				}
			}

			fixed, remaining, err := checker.FixTree(root, cfg, confirm)
			if err != nil {
				return err
			}
			for _, path := range fixed {
				output.Info("Fixed " + path)
			}
			if len(remaining) > 0 {
				for _, v := range remaining {
					output.Warn(v.String())
				}
				return fmt.Errorf("%d header violation(s) left unfixed", len(remaining))
			}
			output.Success(fmt.Sprintf("All files check out ok (%d fixed)", len(fixed)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Rewrite non-conforming files in place")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Fix without prompting per file")

	return cmd
}

func reportViolations(violations []checker.Violation) error {
	if len(violations) == 0 {
		output.Success("All files check out ok")
		return nil
	}

	for _, v := range violations {
		output.Warn(v.String())
	}
	return fmt.Errorf("%d header violation(s) found", len(violations))
}

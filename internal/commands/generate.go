package commands

import (
	"fmt"

	"github.com/Cooolrik/stle/codegen"
	"github.com/Cooolrik/stle/generator"
	"github.com/Cooolrik/stle/internal/generators/macros"
	"github.com/Cooolrik/stle/output"
	"github.com/Cooolrik/stle/project"
	"github.com/spf13/cobra"
)

// GenerateCmd creates and returns the 'generate' command for code generation
func GenerateCmd() *cobra.Command {
	var outputDir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate [type]",
		Short: "Generate boilerplate headers (idempotent, read-only output)",
		Long: `Generate boilerplate source files for the configured project.

Available types:
  macros - the _macros.inl / _undef_macros.inl convenience-macro pair

Files are synced: output identical to what is already on disk is skipped
without touching the file, anything else is replaced and left read-only.

Examples:
  stle generate macros
  stle generate macros --output include/ctle --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := project.Load(".")
			if err != nil {
				return err
			}

			var ops []generator.Operation
			switch args[0] {
			case "macros":
				dir := outputDir
				if dir == "" {
					dir = defaultMacrosDir(cfg)
				}
				ops, err = macros.New(cfg, dir).Generate()
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown generate type %q (available: macros)", args[0])
			}

			stats, err := generator.Execute(cmd.Context(), ops, generator.ExecuteOptions{
				DryRun: dryRun,
				Report: func(path string, result codegen.SyncResult) {
					if result == codegen.Skipped {
						output.Skipping(path)
					} else {
						output.Writing(path)
					}
				},
			})
			if err != nil {
				return err
			}
			if !dryRun {
				output.Success(fmt.Sprintf("%d file(s) written, %d up to date", stats.Written, stats.Skipped))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: first configured source dir)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be written without writing")

	return cmd
}

// defaultMacrosDir places generated headers in the first configured source
// directory, falling back to the working directory.
func defaultMacrosDir(cfg project.Config) string {
	if len(cfg.SourceDirs) > 0 {
		return cfg.SourceDirs[0]
	}
	return "."
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cooolrik/stle/input"
	"github.com/Cooolrik/stle/output"
	"github.com/Cooolrik/stle/project"
	"github.com/spf13/cobra"
)

// InitCmd creates and returns the 'init' command
func InitCmd() *cobra.Command {
	var force, defaults bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a stle.yml configuration for this source tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			path := filepath.Join(dir, project.ConfigFileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := project.Default()
			if !defaults {
				cfg.Project = input.Prompt("Project name", cfg.Project)
				cfg.CopyrightHolder = input.Prompt("Copyright holder", cfg.CopyrightHolder)
				cfg.LicenseType = input.Prompt("License type", cfg.LicenseType)
				cfg.LicenseLink = input.Prompt("License link", cfg.LicenseLink)
			}

			if err := cfg.Write(dir); err != nil {
				return err
			}

			output.Success("Created " + path)
			output.Info("Next steps:")
			output.Step("stle check " + dir)
			output.Step("stle generate macros")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing stle.yml")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Skip prompts and write the default configuration")

	return cmd
}

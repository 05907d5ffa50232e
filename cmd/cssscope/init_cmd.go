package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssscope.yaml config file",
	Long:  `Create a .cssscope.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# cssscope configuration

# Shared settings
verbose: false
quiet: false

# Scoping settings
scope:
  prefix: bootstrap-scope
  source: node_modules/bootstrap/dist/css/bootstrap.css
  input-dir: input
  output-dir: output
  file-name: bootstrap.css
  dry-run: false
  strict: false            # exit 1 when the run fails
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

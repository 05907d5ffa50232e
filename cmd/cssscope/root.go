package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssscope",
	Short: "Scope a third-party stylesheet under a single prefix class",
	Long: `Rewrite a stylesheet so every selector is prefixed with one class.
.btn { ... } becomes .bootstrap-scope .btn { ... }, so the stylesheet only
applies inside <div class="bootstrap-scope">.`,
	// Default behavior: run scope when no subcommand is given.
	// We must call loadConfig here because PreRunE of scopeCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runScope(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress progress output (errors are still printed)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path (.yaml, .yml or .json)")

	rootCmd.AddCommand(scopeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

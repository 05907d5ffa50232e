package main

import (
	"fmt"

	"github.com/rhenandias/cssscope/internal/scoper"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [stylesheet]",
	Short: "Validate the prefix and count the selectors a run would scope",
	Long: `Read a stylesheet (default: the configured source) and report how many
selectors would be scoped, without copying or writing anything.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config := buildRunConfig()

		if err := scoper.ValidatePrefix(config.ScopePrefix); err != nil {
			return err
		}

		pattern := config.SourcePath
		if len(args) == 1 {
			pattern = args[0]
		}

		path, err := scoper.ResolveSource(pattern)
		if err != nil {
			return err
		}

		text, err := scoper.ReadText(path)
		if err != nil {
			return fmt.Errorf("check %s: %w", path, err)
		}

		_, stats := scoper.ScopeWithStats(text, config.ScopePrefix)

		reporter := scoper.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), buildReporterConfig())
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d selectors would be scoped under .%s (%d keyframe selectors skipped)\n",
			path, stats.SelectorsScoped, config.ScopePrefix, stats.KeyframesSkipped)
		reporter.PrintKinds(stats)

		return nil
	},
}

func init() {
	f := checkCmd.Flags()
	f.String("prefix", defaultPrefix, "Class name used to scope every selector")
	f.String("source", defaultSource, "Source stylesheet (path or ** glob matching one file)")
}

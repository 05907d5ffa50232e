package main

import (
	"errors"
	"fmt"

	"github.com/rhenandias/cssscope"
	"github.com/rhenandias/cssscope/internal/scoper"
	"github.com/spf13/cobra"
)

// errRunFailed marks a failure that the reporter has already printed
var errRunFailed = errors.New("scoping failed")

var scopeCmd = &cobra.Command{
	Use:     "scope",
	Aliases: []string{"run"},
	Short:   "Copy the source stylesheet and write a scoped copy",
	Long: `Copy the source stylesheet into the input directory, prefix every selector
with the scope class and write the result to the output directory.
Keyframe selectors (from, to) are left as they are.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runScope,
}

func init() {
	f := scopeCmd.Flags()
	f.String("prefix", defaultPrefix, "Class name used to scope every selector")
	f.String("source", defaultSource, "Source stylesheet (path or ** glob matching one file)")
	f.String("input-dir", defaultInputDir, "Staging directory the source is copied into")
	f.String("output-dir", defaultOutputDir, "Directory the scoped stylesheet is written to")
	f.String("file-name", cssscope.DefaultFileName, "Stylesheet file name in the input and output directories")
	f.Bool("dry-run", false, "Scope without writing the output file")
	f.Bool("strict", false, "Exit 1 when the run fails")
}

// runScope is shared between `cssscope scope` and the bare `cssscope`.
func runScope(cmd *cobra.Command, _ []string) error {
	config := buildRunConfig()
	reporter := scoper.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), buildReporterConfig())

	reporter.Start()

	result, err := cssscope.Run(config, reporter)
	if err != nil {
		reporter.Error(err)

		// Without --strict a failed run still exits 0
		if getBoolWithFallback("strict", "scope.strict", false) {
			return fmt.Errorf("%w: %w", errRunFailed, err)
		}
		return nil
	}

	reporter.Complete(scoper.Summary{
		SourcePath: result.SourcePath,
		InputPath:  result.InputPath,
		OutputPath: result.OutputPath,
		BytesIn:    result.BytesIn,
		BytesOut:   result.BytesOut,
		Stats:      result.Stats,
	})

	return nil
}

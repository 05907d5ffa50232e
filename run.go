package cssscope

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rhenandias/cssscope/internal/scoper"
)

type discardLogger struct{}

func (discardLogger) Step(string, ...any) {}

// Run copies the source stylesheet into InputDir, scopes it and writes the
// result to OutputDir. Steps run strictly in order; the first failure stops
// the run and nothing already written is rolled back.
func Run(config Config, log Logger) (*Result, error) {
	if log == nil {
		log = discardLogger{}
	}
	if config.FileName == "" {
		config.FileName = DefaultFileName
	}

	// 1. Validate the prefix before touching the filesystem
	if err := scoper.ValidatePrefix(config.ScopePrefix); err != nil {
		return nil, err
	}

	// 2. Ensure input and output directories exist
	for _, dir := range []string{config.InputDir, config.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	result := &Result{
		InputPath: filepath.Join(config.InputDir, config.FileName),
	}

	// 3. Copy the source stylesheet into the input directory
	source, err := scoper.ResolveSource(config.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("resolve source: %w", err)
	}
	result.SourcePath = source

	result.BytesCopied, err = scoper.CopyFile(source, result.InputPath)
	if err != nil {
		return nil, fmt.Errorf("copy source: %w", err)
	}
	log.Step("Copied %s to %s (%d bytes)", source, result.InputPath, result.BytesCopied)

	// 4. Read the copied stylesheet
	text, err := scoper.ReadText(result.InputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	result.BytesIn = len(text)

	// 5. Scope selectors
	scoped, stats := scoper.ScopeWithStats(text, config.ScopePrefix)
	result.BytesOut = len(scoped)
	result.Stats = stats
	log.Step("Scoped %d selectors under .%s", stats.SelectorsScoped, config.ScopePrefix)

	if config.DryRun {
		log.Step("Dry run, skipping write")
		return result, nil
	}

	// 6. Save the scoped stylesheet to the output directory
	outputPath := filepath.Join(config.OutputDir, config.FileName)
	if err := scoper.WriteText(outputPath, scoped); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	result.OutputPath = outputPath
	log.Step("Wrote %s", outputPath)

	return result, nil
}

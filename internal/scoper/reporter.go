package scoper

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// ReporterConfig controls console output
type ReporterConfig struct {
	Quiet     bool // Suppress start/complete lines (errors are always printed)
	Verbose   bool // Print per-step details and selector statistics
	UseColors bool // Force color output
}

// Summary is what the reporter prints after a successful run
type Summary struct {
	SourcePath string
	InputPath  string
	OutputPath string // Empty on dry runs
	BytesIn    int
	BytesOut   int
	Stats      Stats
}

// Reporter prints run progress to the console
type Reporter struct {
	w         io.Writer
	errW      io.Writer
	useColors bool
	quiet     bool
	verbose   bool
}

// NewReporter creates a reporter writing progress to w and errors to errW
func NewReporter(w, errW io.Writer, config ReporterConfig) *Reporter {
	return &Reporter{
		w:         w,
		errW:      errW,
		useColors: shouldUseColors(config),
		quiet:     config.Quiet,
		verbose:   config.Verbose,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config ReporterConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// Start prints the start message
func (r *Reporter) Start() {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.w, "Starting stylesheet scoping")
}

// Step prints a verbose progress line
func (r *Reporter) Step(format string, args ...any) {
	if r.quiet || !r.verbose {
		return
	}
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "  "+fmt.Sprintf(format, args...), r.useColors))
}

// Complete prints the completion message, plus statistics in verbose mode
func (r *Reporter) Complete(summary Summary) {
	if r.quiet {
		return
	}

	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Stylesheet scoping completed successfully", r.useColors))

	if !r.verbose {
		return
	}

	if summary.SourcePath != "" {
		fmt.Fprintf(r.w, "  Source: %s\n", RenderStyle(StyleCyan, summary.SourcePath, r.useColors))
	}
	if summary.InputPath != "" {
		fmt.Fprintf(r.w, "  Input: %s\n", RenderStyle(StyleCyan, summary.InputPath, r.useColors))
	}
	if summary.OutputPath != "" {
		fmt.Fprintf(r.w, "  Output: %s\n", RenderStyle(StyleCyan, summary.OutputPath, r.useColors))
	} else {
		fmt.Fprintln(r.w, "  Output: (dry run, nothing written)")
	}
	fmt.Fprintf(r.w, "  Selectors scoped: %d\n", summary.Stats.SelectorsScoped)
	fmt.Fprintf(r.w, "  Keyframe selectors skipped: %d\n", summary.Stats.KeyframesSkipped)
	fmt.Fprintf(r.w, "  Size: %d -> %d bytes\n", summary.BytesIn, summary.BytesOut)

	r.PrintKinds(summary.Stats)
}

// PrintKinds prints the scoped selector count per token kind, most frequent first
func (r *Reporter) PrintKinds(stats Stats) {
	kinds := make([]TokenKind, 0, len(stats.ByKind))
	for kind := range stats.ByKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if stats.ByKind[kinds[i]] != stats.ByKind[kinds[j]] {
			return stats.ByKind[kinds[i]] > stats.ByKind[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	for _, kind := range kinds {
		fmt.Fprintf(r.w, "  * %s: %d\n", kind, stats.ByKind[kind])
	}
}

// Error prints a failed run. It is never suppressed by quiet mode.
func (r *Reporter) Error(err error) {
	fmt.Fprintf(r.errW, "\n%s %v\n", RenderStyle(StyleRed, "An error occurred during scoping:", r.useColors), err)
}

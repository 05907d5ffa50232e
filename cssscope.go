// Package cssscope scopes a third-party stylesheet under a single prefix class.
//
// Every selector that starts a rule is prefixed with ".prefix " so the
// stylesheet only applies inside an element carrying that class:
//
//	.btn, .card { ... }        ->  .app .btn, .app .card { ... }
//	:root { --x: 1; }          ->  .app :root { --x: 1; }
//	@keyframes f { from {} }   ->  unchanged ("from" and "to" are never scoped)
//
// # Library
//
//	out := cssscope.Scope(css, "app")
//
//	result, err := cssscope.Run(cssscope.Config{
//		ScopePrefix: "app",
//		InputDir:    "input",
//		OutputDir:   "output",
//		SourcePath:  "node_modules/bootstrap/dist/css/bootstrap.css",
//	}, nil)
//
// # CLI Tool
//
//	go install github.com/rhenandias/cssscope/cmd/cssscope@latest
//
// The transform is pattern based, not a CSS parser. Scoping is not
// idempotent: running it over its own output prefixes every selector again.
package cssscope

import "github.com/rhenandias/cssscope/internal/scoper"

// DefaultFileName is the stylesheet name used in the input and output directories
const DefaultFileName = "bootstrap.css"

// Stats counts the selectors rewritten by a scoping pass
type Stats = scoper.Stats

// Config holds the settings for one run. It is read only during Run.
type Config struct {
	ScopePrefix string // "bootstrap-scope" (class name, no leading dot)
	InputDir    string // "input" (staging directory the source is copied into)
	OutputDir   string // "output" (destination of the scoped stylesheet)
	SourcePath  string // "node_modules/bootstrap/dist/css/bootstrap.css" (path or ** glob)
	FileName    string // Stylesheet name in both directories (default: bootstrap.css)
	DryRun      bool   // Scope but do not write the output file
}

// Result describes a completed run
type Result struct {
	SourcePath  string // Resolved source stylesheet
	InputPath   string // {InputDir}/{FileName}
	OutputPath  string // {OutputDir}/{FileName}, empty on dry runs
	BytesCopied int64
	BytesIn     int // Length of the decoded input text
	BytesOut    int // Length of the scoped text
	Stats       Stats
}

// Logger receives progress lines during Run
type Logger interface {
	Step(format string, args ...any)
}

// Scope prefixes every selector in cssText with ".scopePrefix ".
// It performs no I/O and never fails.
func Scope(cssText, scopePrefix string) string {
	return scoper.Scope(cssText, scopePrefix)
}

// ValidatePrefix reports whether prefix can be used as a scope class name
func ValidatePrefix(prefix string) error {
	return scoper.ValidatePrefix(prefix)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rhenandias/cssscope"
	"github.com/rhenandias/cssscope/internal/scoper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultConfigPath = ".cssscope.yaml"
	envPrefix         = "CSSSCOPE_"

	defaultPrefix    = "bootstrap-scope"
	defaultSource    = "node_modules/bootstrap/dist/css/bootstrap.css"
	defaultInputDir  = "input"
	defaultOutputDir = "output"
)

var k = koanf.New(".")

// legacyKeys maps the flat keys of a config.json ({"scopePrefix": ...})
// onto the sectioned keys used everywhere else.
var legacyKeys = map[string]string{
	"scopePrefix": "scope.prefix",
	"inputDir":    "scope.input-dir",
	"outputDir":   "scope.output-dir",
	"sourcePath":  "scope.source",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set,
	// so flag defaults never shadow the config file)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), parserFor(configPath)); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
		if err := applyLegacyKeys(); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSSCOPE_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// parserFor picks the koanf parser from the config file extension
func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Parser()
	}
	return yaml.Parser()
}

// applyLegacyKeys copies flat keys to their sectioned names unless the
// sectioned key is already set.
func applyLegacyKeys() error {
	for legacy, key := range legacyKeys {
		if !k.Exists(legacy) || k.Exists(key) {
			continue
		}
		if err := k.Set(key, k.Get(legacy)); err != nil {
			return fmt.Errorf("mapping %s to %s: %w", legacy, key, err)
		}
	}
	return nil
}

// envKey maps an environment variable to a config key:
//
//	CSSSCOPE_SCOPE_PREFIX    -> scope.prefix
//	CSSSCOPE_SCOPE_INPUT_DIR -> scope.input-dir
//	CSSSCOPE_VERBOSE         -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// buildRunConfig constructs the library's Config struct from koanf state.
func buildRunConfig() cssscope.Config {
	return cssscope.Config{
		ScopePrefix: getStringWithFallback("prefix", "scope.prefix", defaultPrefix),
		SourcePath:  getStringWithFallback("source", "scope.source", defaultSource),
		InputDir:    getStringWithFallback("input-dir", "scope.input-dir", defaultInputDir),
		OutputDir:   getStringWithFallback("output-dir", "scope.output-dir", defaultOutputDir),
		FileName:    getStringWithFallback("file-name", "scope.file-name", cssscope.DefaultFileName),
		DryRun:      getBoolWithFallback("dry-run", "scope.dry-run", false),
	}
}

// buildReporterConfig constructs the console reporter settings from koanf state.
func buildReporterConfig() scoper.ReporterConfig {
	return scoper.ReporterConfig{
		Quiet:     getBoolWithFallback("quiet", "quiet", false),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
		UseColors: getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

package cssscope

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCSS = `/*! Bootstrap v5 */
:root {
  --bs-blue: #0d6efd;
}

*,
*::before,
*::after {
  box-sizing: border-box;
}

body, h1 { margin: 0; font-family: system-ui, sans-serif; }

.btn:hover { color: var(--bs-blue); }

[hidden] { display: none !important; }

@keyframes progress-bar-stripes {
  from { background-position-x: 1rem; }
  to { background-position-x: 0; }
}
`

const fixtureScoped = `/*! Bootstrap v5 */
.bs :root {
  --bs-blue: #0d6efd;
}

.bs *,
.bs *::before,
.bs *::after {
  box-sizing: border-box;
}

.bs body, .bs h1 { margin: 0; font-family: system-ui, sans-serif; }

.bs .btn:hover { color: var(--bs-blue); }

.bs [hidden] { display: none !important; }

@keyframes progress-bar-stripes {
  from { background-position-x: 1rem; }
  to { background-position-x: 0; }
}
`

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Step(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func newFixture(t *testing.T) (Config, string) {
	t.Helper()

	dir := t.TempDir()
	source := filepath.Join(dir, "vendor", "bootstrap.min.css")
	require.NoError(t, os.MkdirAll(filepath.Dir(source), 0o755))
	require.NoError(t, os.WriteFile(source, []byte(fixtureCSS), 0o644))

	return Config{
		ScopePrefix: "bs",
		InputDir:    filepath.Join(dir, "work", "input"),
		OutputDir:   filepath.Join(dir, "work", "output"),
		SourcePath:  source,
	}, dir
}

func TestRun(t *testing.T) {
	config, _ := newFixture(t)
	log := &recordingLogger{}

	result, err := Run(config, log)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(config.InputDir, "bootstrap.css"), result.InputPath)
	assert.Equal(t, filepath.Join(config.OutputDir, "bootstrap.css"), result.OutputPath)
	assert.Equal(t, int64(len(fixtureCSS)), result.BytesCopied)
	assert.Equal(t, 8, result.Stats.SelectorsScoped)
	assert.Equal(t, 2, result.Stats.KeyframesSkipped)
	assert.Equal(t, len(fixtureScoped), result.BytesOut)
	assert.Len(t, log.lines, 3)

	copied, err := os.ReadFile(result.InputPath)
	require.NoError(t, err)
	assert.Equal(t, fixtureCSS, string(copied))

	scoped, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, fixtureScoped, string(scoped))
}

func TestRun_Deterministic(t *testing.T) {
	config, _ := newFixture(t)

	_, err := Run(config, nil)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(config.OutputDir, DefaultFileName))
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(config.OutputDir))

	_, err = Run(config, nil)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(config.OutputDir, DefaultFileName))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRun_OverwritesExistingFiles(t *testing.T) {
	config, _ := newFixture(t)
	require.NoError(t, os.MkdirAll(config.OutputDir, 0o755))
	stale := filepath.Join(config.OutputDir, DefaultFileName)
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o644))

	_, err := Run(config, nil)
	require.NoError(t, err)

	got, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, fixtureScoped, string(got))
}

func TestRun_SourceGlob(t *testing.T) {
	config, dir := newFixture(t)
	config.SourcePath = filepath.Join(dir, "**", "bootstrap.min.css")
	config.FileName = "scoped.css"

	result, err := Run(config, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "vendor", "bootstrap.min.css"), result.SourcePath)
	assert.FileExists(t, filepath.Join(config.OutputDir, "scoped.css"))
}

func TestRun_SourceIsInputFile(t *testing.T) {
	config, _ := newFixture(t)
	require.NoError(t, os.MkdirAll(config.InputDir, 0o755))
	staged := filepath.Join(config.InputDir, DefaultFileName)
	require.NoError(t, os.WriteFile(staged, []byte(".a { x: y; }"), 0o644))
	config.SourcePath = staged

	result, err := Run(config, nil)
	require.NoError(t, err)

	source, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, ".a { x: y; }", string(source))

	scoped, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, ".bs .a { x: y; }", string(scoped))
}

func TestRun_DryRun(t *testing.T) {
	config, _ := newFixture(t)
	config.DryRun = true

	result, err := Run(config, nil)
	require.NoError(t, err)
	assert.Empty(t, result.OutputPath)
	assert.Equal(t, 8, result.Stats.SelectorsScoped)
	assert.NoFileExists(t, filepath.Join(config.OutputDir, DefaultFileName))
}

func TestRun_Errors(t *testing.T) {
	t.Run("invalid prefix touches nothing", func(t *testing.T) {
		config, _ := newFixture(t)
		config.ScopePrefix = "not valid"

		_, err := Run(config, nil)
		require.ErrorContains(t, err, "invalid scope prefix")
		assert.NoDirExists(t, config.InputDir)
	})

	t.Run("missing source", func(t *testing.T) {
		config, dir := newFixture(t)
		config.SourcePath = filepath.Join(dir, "missing.css")

		_, err := Run(config, nil)
		require.ErrorIs(t, err, os.ErrNotExist)
		require.ErrorContains(t, err, "copy source")
		// Directories are created before the copy and are not rolled back
		assert.DirExists(t, config.InputDir)
		assert.NoFileExists(t, filepath.Join(config.OutputDir, DefaultFileName))
	})

	t.Run("output directory blocked by a file", func(t *testing.T) {
		config, dir := newFixture(t)
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))
		config.OutputDir = filepath.Join(blocker, "output")

		_, err := Run(config, nil)
		require.ErrorContains(t, err, "create directory")
	})
}

func TestScope_PublicAPI(t *testing.T) {
	require.Equal(t, ".app .a, .app .b { x: y; }", Scope(".a, .b { x: y; }", "app"))
	require.NoError(t, ValidatePrefix("app"))
	require.Error(t, ValidatePrefix(""))
}

package scoper

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	// ErrNoSource is returned when a source glob matches no file
	ErrNoSource = errors.New("no source stylesheet found")
	// ErrAmbiguousSource is returned when a source glob matches more than one file
	ErrAmbiguousSource = errors.New("source pattern matches more than one stylesheet")
)

// ResolveSource returns the stylesheet path for pattern.
// Existing files and paths without glob meta characters are returned
// unchanged; glob patterns (with ** support) must match exactly one file.
func ResolveSource(pattern string) (string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return pattern, nil
	}
	if _, err := os.Stat(pattern); err == nil {
		return pattern, nil
	}

	// Use doublestar for ** glob support
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return "", fmt.Errorf("glob pattern %q: %w", pattern, err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrNoSource, pattern)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %s", ErrAmbiguousSource, pattern, strings.Join(matches, ", "))
	}
}

// CopyFile copies src to dst, creating or truncating dst.
// When both paths name the same file nothing is written.
func CopyFile(src, dst string) (int64, error) {
	// #nosec G304 - path comes from trusted configuration
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}
	// Creating dst would truncate src before it is read
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return srcInfo.Size(), nil
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, fmt.Errorf("copy to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", dst, err)
	}

	return n, nil
}

// ReadText reads a stylesheet as UTF-8 text. A UTF-8 byte order mark is
// kept as U+FEFF; a UTF-16 one selects UTF-16 decoding and is dropped.
// Invalid UTF-8 becomes U+FFFD.
func ReadText(path string) (string, error) {
	// #nosec G304 - path comes from trusted configuration
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if bytes.HasPrefix(raw, utf8BOM) {
		decoder = unicode.UTF8.NewDecoder()
	}

	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}

	return string(decoded), nil
}

// WriteText writes text to path as UTF-8, overwriting any existing file.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

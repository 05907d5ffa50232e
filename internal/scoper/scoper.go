package scoper

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Stats counts what a single Scope pass did
type Stats struct {
	SelectorsScoped  int // Matches rewritten with the prefix
	KeyframesSkipped int // "from"/"to" matches left untouched
	ByKind           map[TokenKind]int
}

// selectorMatch is one boundary + whitespace + token span
type selectorMatch struct {
	start      int // boundary offset
	tokenStart int // first byte of the token
	end        int // one past the token
	kind       TokenKind
}

// Scope prefixes every selector in cssText with ".scopePrefix ".
// It never fails; regions that do not match are copied unchanged.
func Scope(cssText, scopePrefix string) string {
	out, _ := ScopeWithStats(cssText, scopePrefix)
	return out
}

// ScopeWithStats is Scope plus counters for reporting.
//
// The scan walks the text once. At every offset it tries a selector match;
// on success the match is emitted (rewritten or, for keyframe keywords,
// verbatim) and scanning resumes after it, otherwise one byte is copied.
func ScopeWithStats(cssText, scopePrefix string) (string, Stats) {
	var (
		b     strings.Builder
		stats = Stats{ByKind: make(map[TokenKind]int)}
	)
	b.Grow(len(cssText) + len(cssText)/8)

	scope := "." + scopePrefix + " "

	for i := 0; i < len(cssText); {
		m, ok := matchSelectorAt(cssText, i)
		if !ok {
			b.WriteByte(cssText[i])
			i++
			continue
		}

		token := cssText[m.tokenStart:m.end]
		if isKeyframeKeyword(token) {
			b.WriteString(cssText[m.start:m.end])
			stats.KeyframesSkipped++
		} else {
			b.WriteString(cssText[m.start:m.tokenStart])
			b.WriteString(scope)
			b.WriteString(token)
			stats.SelectorsScoped++
			stats.ByKind[m.kind]++
		}
		i = m.end
	}

	return b.String(), stats
}

// matchSelectorAt tries boundary, whitespace, token and the "{" lookahead at i.
// The start of the text counts as a boundary of its own.
func matchSelectorAt(s string, i int) (selectorMatch, bool) {
	j := matchBoundary(s, i)
	if j == i && i != 0 {
		return selectorMatch{}, false
	}
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !isSpace(r) {
			break
		}
		j += size
	}

	kind, end := ClassifyToken(s, j)
	if kind == TokenNone {
		return selectorMatch{}, false
	}
	if !opensBlock(s, end) {
		return selectorMatch{}, false
	}

	return selectorMatch{start: i, tokenStart: j, end: end, kind: kind}, true
}

// matchBoundary matches ",", "{", "}" or "*/" and returns the offset after it
func matchBoundary(s string, i int) int {
	switch s[i] {
	case ',', '{', '}':
		return i + 1
	case '*':
		if i+1 < len(s) && s[i+1] == '/' {
			return i + 2
		}
	}
	return i
}

// opensBlock reports whether a "{" follows i before any other brace.
// Braces inside comments or strings are not special-cased.
func opensBlock(s string, i int) bool {
	idx := strings.IndexAny(s[i:], "{}")
	return idx >= 0 && s[i+idx] == '{'
}

// isKeyframeKeyword reports whether token is a @keyframes step keyword
func isKeyframeKeyword(token string) bool {
	return token == "from" || token == "to"
}

// isSpace matches the ECMAScript \s class: Unicode white space and
// U+FEFF, but not U+0085.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085', utf8.RuneError:
		return false
	}
	return unicode.IsSpace(r)
}

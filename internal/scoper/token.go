package scoper

// TokenKind identifies which selector grammar rule matched a candidate token
type TokenKind int

// Token kinds in match priority order
const (
	TokenNone TokenKind = iota
	TokenRoot
	TokenClass
	TokenID
	TokenPseudoElement
	TokenPseudoClass
	TokenType
	TokenUniversal
	TokenAttribute
)

// String returns a short name for the kind, used in verbose output and tests
func (k TokenKind) String() string {
	switch k {
	case TokenRoot:
		return "root"
	case TokenClass:
		return "class"
	case TokenID:
		return "id"
	case TokenPseudoElement:
		return "pseudo-element"
	case TokenPseudoClass:
		return "pseudo-class"
	case TokenType:
		return "type"
	case TokenUniversal:
		return "universal"
	case TokenAttribute:
		return "attribute"
	default:
		return "none"
	}
}

// ClassifyToken reports which grammar rule matches s starting at i and the
// end offset of the matched token. The first rule that matches wins.
// It returns (TokenNone, i) when nothing matches.
func ClassifyToken(s string, i int) (TokenKind, int) {
	if i < 0 || i >= len(s) {
		return TokenNone, i
	}

	if end := matchRoot(s, i); end > i {
		return TokenRoot, end
	}
	if end := matchPrefixedName(s, i, "."); end > i {
		return TokenClass, end
	}
	if end := matchPrefixedName(s, i, "#"); end > i {
		return TokenID, end
	}
	if end := matchPrefixedName(s, i, "::"); end > i {
		return TokenPseudoElement, end
	}
	if end := matchPrefixedName(s, i, ":"); end > i {
		return TokenPseudoClass, end
	}
	if end := matchLetters(s, i); end > i {
		return TokenType, end
	}
	if s[i] == '*' {
		return TokenUniversal, i + 1
	}
	if end := matchAttribute(s, i); end > i {
		return TokenAttribute, end
	}

	return TokenNone, i
}

// matchRoot matches the literal ":root"
func matchRoot(s string, i int) int {
	const root = ":root"
	if len(s)-i >= len(root) && s[i:i+len(root)] == root {
		return i + len(root)
	}
	return i
}

// matchPrefixedName matches prefix followed by one or more name characters
func matchPrefixedName(s string, i int, prefix string) int {
	if len(s)-i < len(prefix) || s[i:i+len(prefix)] != prefix {
		return i
	}
	start := i + len(prefix)
	end := start
	for end < len(s) && isNameChar(s[end]) {
		end++
	}
	if end == start {
		return i
	}
	return end
}

// matchLetters matches a run of ASCII letters (type selectors)
func matchLetters(s string, i int) int {
	end := i
	for end < len(s) && isLetter(s[end]) {
		end++
	}
	return end
}

// matchAttribute matches "[" ... "]" with no "]" inside
func matchAttribute(s string, i int) int {
	if s[i] != '[' {
		return i
	}
	for j := i + 1; j < len(s); j++ {
		if s[j] == ']' {
			return j + 1
		}
	}
	return i
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

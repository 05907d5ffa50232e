package scoper

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrInvalidPrefix is returned when the scope prefix is not a usable class name
var ErrInvalidPrefix = errors.New("invalid scope prefix")

// ValidatePrefix checks that prefix lexes as exactly one CSS identifier,
// so ".prefix " can be spliced in front of a selector as is.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("%w: prefix is empty", ErrInvalidPrefix)
	}
	if strings.IndexFunc(prefix, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidPrefix, prefix)
	}

	lexer := css.NewLexer(parse.NewInputString(prefix))

	tt, text := lexer.Next()
	if tt != css.IdentToken || string(text) != prefix {
		return fmt.Errorf("%w: %q is not a single CSS identifier", ErrInvalidPrefix, prefix)
	}

	// ErrorToken at EOF is the only thing allowed after the identifier
	if tt, _ := lexer.Next(); tt != css.ErrorToken {
		return fmt.Errorf("%w: %q is not a single CSS identifier", ErrInvalidPrefix, prefix)
	}

	return nil
}

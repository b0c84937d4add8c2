package group

import (
	"fmt"

	"grove/internal/token"
)

// Delim identifies a delimiter pair by its opening spelling.
type Delim uint8

const (
	// DelimParen is the () pair.
	DelimParen Delim = iota
	// DelimBracket is the [] pair.
	DelimBracket
	// DelimBrace is the {} pair.
	DelimBrace
	// DelimAny matches any delimiter in Shape and Find.
	DelimAny
)

// Open returns the opening spelling.
func (d Delim) Open() string {
	switch d {
	case DelimParen:
		return "("
	case DelimBracket:
		return "["
	case DelimBrace:
		return "{"
	}
	return "?"
}

// Close returns the closing spelling, a pure function of the delimiter.
func (d Delim) Close() string {
	switch d {
	case DelimParen:
		return ")"
	case DelimBracket:
		return "]"
	case DelimBrace:
		return "}"
	}
	return "?"
}

func (d Delim) String() string {
	return d.Open()
}

// DelimOf maps an opening spelling to its Delim.
func DelimOf(lit string) (Delim, bool) {
	switch lit {
	case "(":
		return DelimParen, true
	case "[":
		return DelimBracket, true
	case "{":
		return DelimBrace, true
	}
	return DelimAny, false
}

// IsOpen reports whether the token is an opening delimiter symbol.
// False for every non-symbol token.
func IsOpen(tok token.Token) bool {
	switch tok.Kind {
	case token.LParen, token.LBracket, token.LBrace:
		return tok.IsSymbol()
	}
	return false
}

// IsClose reports whether the token is a closing delimiter symbol.
// False for every non-symbol token.
func IsClose(tok token.Token) bool {
	switch tok.Kind {
	case token.RParen, token.RBracket, token.RBrace:
		return tok.IsSymbol()
	}
	return false
}

// Matching maps each of the six delimiter spellings to its partner:
// ( <-> ), [ <-> ], { <-> }. It is its own inverse and errors for any
// other input. Usable both to derive a group's closer and to find the
// opener matching a closer while scanning backward.
func Matching(lit string) (string, error) {
	switch lit {
	case "(":
		return ")", nil
	case ")":
		return "(", nil
	case "[":
		return "]", nil
	case "]":
		return "[", nil
	case "{":
		return "}", nil
	case "}":
		return "{", nil
	}
	return "", fmt.Errorf("not a delimiter: %q", lit)
}

// MatchingTok is Matching over a symbol token's spelling.
func MatchingTok(tok token.Token) (string, error) {
	if !tok.IsSymbol() {
		return "", fmt.Errorf("not a delimiter token: %q", tok.Text)
	}
	return Matching(tok.Text)
}

package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for diagnostics without a specific code.
	UnknownCode Code = 0

	// lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexBadNumber                Code = 1003
	LexBadEscape                Code = 1004
	LexUnterminatedBlockComment Code = 1005

	// grouping
	GrpInfo                Code = 2000
	GrpUnclosedDelimiter   Code = 2001
	GrpMismatchedDelimiter Code = 2002
	GrpStrayCloser         Code = 2003
	GrpExcessSeparator     Code = 2004

	// driver / IO
	IOInfo        Code = 4000
	IOReadFailure Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:                     "lexical note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexBadNumber:                "malformed numeric literal",
	LexBadEscape:                "invalid escape sequence",
	LexUnterminatedBlockComment: "unterminated block comment",

	GrpInfo:                "grouping note",
	GrpUnclosedDelimiter:   "unclosed delimiter",
	GrpMismatchedDelimiter: "mismatched delimiter",
	GrpStrayCloser:         "closing delimiter without opener",
	GrpExcessSeparator:     "excess separator",

	IOInfo:        "io note",
	IOReadFailure: "failed to read source file",
}

// ID returns the stable short identifier, e.g. "LEX1001" or "GRP2002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("GRP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

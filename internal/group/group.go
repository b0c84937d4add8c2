package group

import (
	"fmt"

	"grove/internal/source"
	"grove/internal/token"
)

// Elem is one element of a grouped token stream: a lexical token when Sub is
// nil, otherwise a nested group.
type Elem struct {
	Tok token.Token
	Sub *Group
}

// TokElem wraps a plain token.
func TokElem(tok token.Token) Elem {
	return Elem{Tok: tok}
}

// GroupElem wraps a nested group.
func GroupElem(g *Group) Elem {
	return Elem{Sub: g}
}

// IsGroup reports whether the element is a nested group.
func (e Elem) IsGroup() bool { return e.Sub != nil }

// Span returns the source span of the element.
func (e Elem) Span() source.Span {
	if e.Sub != nil {
		return e.Sub.Span
	}
	return e.Tok.Span
}

// Field is the ordered element sequence between two separators.
type Field []Elem

// Tokens flattens the field into its ordered token sequence, expanding
// nested groups into their full token runs.
func (f Field) Tokens() []token.Token {
	out := make([]token.Token, 0, len(f))
	for _, e := range f {
		if e.Sub != nil {
			out = append(out, e.Sub.Tokens()...)
		} else {
			out = append(out, e.Tok)
		}
	}
	return out
}

// Group is one balanced delimiter span. Span covers the opening delimiter
// through one past the closing delimiter, so both endpoints are available
// for re-emission. Err is non-empty when the group was built from malformed
// but recoverable input (excess separators).
type Group struct {
	Delim  Delim
	Fields []Field
	Seps   []token.Token
	Span   source.Span
	Err    string
}

// New builds a group from an already-partitioned delimiter span.
//
// A separator surplus is a user mistake (doubled or trailing comma): the
// group is still constructed, with Err describing the problem. A separator
// deficit can only come from a broken grouping pass and fails hard.
func New(d Delim, fields []Field, seps []token.Token, span source.Span) (*Group, error) {
	expected := len(fields) - 1
	if expected < 0 {
		expected = 0
	}

	g := &Group{
		Delim:  d,
		Fields: fields,
		Seps:   seps,
		Span:   span,
	}

	switch {
	case len(seps) > expected:
		g.Err = fmt.Sprintf("%q group has excess separator %q: expected %d, got %d",
			d.Open(), seps[expected].Text, expected, len(seps))
	case len(seps) < expected:
		return nil, fmt.Errorf("internal: %q group with %d fields needs %d separators, got %d",
			d.Open(), len(fields), expected, len(seps))
	}
	return g, nil
}

// Is reports whether the group opens with the given delimiter.
func (g *Group) Is(d Delim) bool {
	return g.Delim == d
}

// AnyFields makes Shape ignore the field count.
const AnyFields = -1

// Shape reports whether the group matches the given delimiter and field
// count. DelimAny and AnyFields each disable their check independently,
// so Shape(DelimAny, 2) matches any two-field group.
func (g *Group) Shape(d Delim, nfields int) bool {
	if d != DelimAny && g.Delim != d {
		return false
	}
	if nfields != AnyFields && len(g.Fields) != nfields {
		return false
	}
	return true
}

// Tokens returns the group's full token run in source order: the opening
// delimiter, each field's tokens with the original separator tokens between
// fields, and the closing delimiter. The delimiter tokens are synthesized
// from Delim and Span since the group does not store them.
func (g *Group) Tokens() []token.Token {
	out := make([]token.Token, 0, 2+len(g.Seps)+len(g.Fields))
	out = append(out, g.openTok())
	for i, f := range g.Fields {
		if i > 0 && i-1 < len(g.Seps) {
			out = append(out, g.Seps[i-1])
		}
		out = append(out, f.Tokens()...)
	}
	// excess separators still belong to the run
	first := len(g.Fields) - 1
	if first < 0 {
		first = 0
	}
	for i := first; i < len(g.Seps); i++ {
		out = append(out, g.Seps[i])
	}
	out = append(out, g.closeTok())
	return out
}

// Find returns the index of the first nested group with the given delimiter,
// or -1. DelimAny matches the first group of any kind.
func Find(elems []Elem, d Delim) int {
	for i, e := range elems {
		if e.Sub == nil {
			continue
		}
		if d == DelimAny || e.Sub.Delim == d {
			return i
		}
	}
	return -1
}

// openTok synthesizes the opening delimiter token at the span start.
func (g *Group) openTok() token.Token {
	start := g.Span.Start
	sp := source.Span{
		File:  g.Span.File,
		Start: start,
		End:   source.Pos{Line: start.Line, Col: start.Col + 1},
	}
	tok, _ := token.Symbol(g.Delim.Open(), sp)
	return tok
}

// closeTok synthesizes the closing delimiter token ending at the span end.
func (g *Group) closeTok() token.Token {
	end := g.Span.End
	start := end
	if start.Col > 1 {
		start.Col--
	}
	sp := source.Span{File: g.Span.File, Start: start, End: end}
	tok, _ := token.Symbol(g.Delim.Close(), sp)
	return tok
}

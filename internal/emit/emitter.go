// Package emit re-serializes token streams to text while reproducing the
// original inter-token whitespace from recorded source positions.
package emit

import (
	"strings"

	"grove/internal/source"
	"grove/internal/token"
)

// Emitter accumulates output while tracking a line/column cursor. Tokens are
// placed at their recorded positions: the gap between the cursor and the next
// token's start is filled with newlines and spaces, which reproduces the
// original layout byte for byte when tokens are emitted in source order.
//
// An Emitter is local to a single serialization call; it is not reused.
type Emitter struct {
	buf  strings.Builder
	line uint32
	col  uint32
}

// New creates an emitter whose cursor sits at the given position.
func New(at source.Pos) *Emitter {
	if !at.IsValid() {
		at = source.Pos{Line: 1, Col: 1}
	}
	return &Emitter{line: at.Line, col: at.Col}
}

// Token advances the cursor to the token's start position, emitting the
// newlines and spaces needed to get there, then writes the token text.
// A token positioned at or before the cursor is written immediately with a
// single separating space, so out-of-order input degrades to readable text
// instead of corrupting the cursor.
func (e *Emitter) Token(tok token.Token) {
	start := tok.Span.Start
	switch {
	case !start.IsValid(), start.Before(source.Pos{Line: e.line, Col: e.col}):
		e.sep()
	default:
		for e.line < start.Line {
			e.buf.WriteByte('\n')
			e.line++
			e.col = 1
		}
		for e.col < start.Col {
			e.buf.WriteByte(' ')
			e.col++
		}
	}
	e.write(tok.Text)
	if tok.Span.End.IsValid() && !tok.Span.End.Before(source.Pos{Line: e.line, Col: e.col}) {
		e.line = tok.Span.End.Line
		e.col = tok.Span.End.Col
	}
}

// String finalizes and returns the accumulated text.
func (e *Emitter) String() string {
	return e.buf.String()
}

// sep writes a single space unless the output is empty or already ends with
// whitespace.
func (e *Emitter) sep() {
	s := e.buf.String()
	if s == "" {
		return
	}
	last := s[len(s)-1]
	if last == ' ' || last == '\n' || last == '\t' {
		return
	}
	e.buf.WriteByte(' ')
	e.col++
}

// write appends raw text, keeping the cursor in sync with any newlines the
// text itself contains.
func (e *Emitter) write(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			e.line++
			e.col = 1
		} else {
			e.col++
		}
	}
	e.buf.WriteString(s)
}

package source

import (
	"fmt"
)

// Span is a range in a source file: the position of the first byte and the
// position one past the last byte. Carrying both endpoints lets diagnostics
// underline multi-line ranges and lets re-emission place closing delimiters.
type Span struct {
	File  FileID
	Start Pos
	End   Pos
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d:%d-%d:%d", s.File, s.Start.Line, s.Start.Col, s.End.Line, s.End.Col)
}

// Cover extends the span to include other. Spans from different files are
// left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start.Before(s.Start) {
		s.Start = other.Start
	}
	if s.End.Before(other.End) {
		s.End = other.End
	}
	return s
}

// OneLine reports whether the span starts and ends on the same line.
func (s Span) OneLine() bool {
	return s.Start.Line == s.End.Line
}

package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"grove/internal/source"
)

// Cursor is a byte position in a file that also tracks the 1-based line and
// column of the next byte, so every scanned fragment gets a line/column span.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32
}

// NewCursor creates a cursor at the start of the file.
func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Off: 0, Line: 1, Col: 1}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return int(c.Off) >= len(c.File.Content)
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 reads the current and next byte; ok is false near EOF.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if int(c.Off)+1 >= len(c.File.Content) {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump advances one byte and returns it, keeping line/column in sync.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return b
}

// Pos returns the position of the next byte.
func (c *Cursor) Pos() source.Pos {
	return source.Pos{Line: c.Line, Col: c.Col}
}

// Mark remembers a cursor position so a span can be taken later.
type Mark struct {
	Off uint32
	Pos source.Pos
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Pos: c.Pos()}
}

// SpanFrom returns the span from a mark to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: m.Pos, End: c.Pos()}
}

// TextFrom returns the source bytes from a mark to the current position.
func (c *Cursor) TextFrom(m Mark) []byte {
	return c.File.Content[m.Off:c.Off]
}

package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"ape/internal/source"
)

// Cursor is a byte position inside a file plus enough line bookkeeping
// to derive 1-based line/column pairs without re-walking the content.
type Cursor struct {
	File *source.File
	Off  uint32
	// Line is 1-based; LineStart is the offset of the first byte of Line.
	Line      uint32
	LineStart uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a cursor at the start of the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Line:  1,
		Limit: limit,
	}
}

// EOF reports whether the cursor ran past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek reads the current byte without advancing, 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 reads the current and next byte; ok is false near EOF.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump advances one byte and returns it, maintaining the line counter.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
		c.LineStart = c.Off
	}
	return b
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		if b == '\n' {
			c.Line++
			c.LineStart = c.Off
		}
		return true
	}
	return false
}

// Mark remembers a cursor position so a scanner can later build the
// span and column of the fragment it consumed, or back out entirely.
type Mark struct {
	off       uint32
	line      uint32
	lineStart uint32
}

func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.Line, lineStart: c.LineStart}
}

// SpanFrom builds the span from a mark up to the current offset.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.off,
		End:   c.Off,
	}
}

// Reset rewinds the cursor back to a mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = m.off
	c.Line = m.line
	c.LineStart = m.lineStart
}

// Col is the 1-based column of the mark on its own line.
func (m Mark) Col() uint32 {
	return m.off - m.lineStart + 1
}

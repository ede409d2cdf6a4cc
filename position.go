package runeio

import (
	"fmt"
)

// tabStop is the distance between tab stops, in columns.
const tabStop = 8

// Position locates a rune within a decoded text stream.
type Position struct {
	// Offset is the byte offset from the start of the stream.
	Offset uint64

	// Line is the 1-based line number.
	Line uint64

	// Column is the 1-based column number, counted in runes with tab stops
	// every 8 columns.
	Column uint64

	// SkipLF is set after a carriage return, so that an immediately
	// following line feed does not count as a second line break.
	SkipLF bool
}

// StartPosition returns the Position of the first rune of a stream.
func StartPosition() Position {
	return Position{Line: 1, Column: 1}
}

// Reset sets this position back to the start of the stream.
func (pos *Position) Reset() {
	*pos = StartPosition()
}

// Advance moves the position past a rune, given the rune itself and the
// number of bytes that encoded it. Both arguments are usually exactly the
// first two values returned by a ReadRune call.
//
// "\r", "\n", and "\r\n" each advance the position to the start of the next
// line; a tab advances it to the next tab stop.
func (pos *Position) Advance(ch rune, size int) {
	if size < 0 {
		panic("negative size")
	}
	if size == 0 {
		return
	}

	pos.Offset += uint64(size)
	switch {
	case ch == '\r':
		pos.Line++
		pos.Column = 1
		pos.SkipLF = true
		return
	case ch == '\n' && pos.SkipLF:
		// The preceding '\r' already moved to the next line.
	case ch == '\n':
		pos.Line++
		pos.Column = 1
	case ch == '\t':
		pos.Column += tabStop - (pos.Column-1)%tabStop
	default:
		pos.Column++
	}
	pos.SkipLF = false
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d (byte offset %d)", pos.Line, pos.Column, pos.Offset)
}

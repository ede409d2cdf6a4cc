package runeio

import (
	"fmt"
	"io"
)

// ASCIIDecoder decodes a stream of US-ASCII bytes into runes, one call at a
// time. Every byte below 0x80 decodes to the rune of the same value, and any
// other byte is rejected with ErrNonASCII.
//
// US-ASCII is a strict subset of UTF-8, so a Decoder would accept everything
// an ASCIIDecoder accepts. Use ASCIIDecoder when the input is required to be
// 7-bit and the caller wants that requirement enforced.
type ASCIIDecoder struct {
	// src is the byte source being decoded.
	src io.ByteReader

	// off counts the bytes consumed from src so far.
	off uint64
}

// NewASCIIDecoder constructs a new ASCIIDecoder with the given byte source.
//
// `d := NewASCIIDecoder(src)` is exactly equivalent to
// `d := new(ASCIIDecoder)` followed by `d.Init(src)`.
func NewASCIIDecoder(src io.ByteReader) *ASCIIDecoder {
	d := new(ASCIIDecoder)
	d.Init(src)
	return d
}

// Init initializes this ASCIIDecoder with the given byte source. Init is
// also useful for re-using an existing ASCIIDecoder, as it completely
// re-initializes it to decode the new source from a zero byte offset.
//
// The source MUST NOT be nil.
func (d *ASCIIDecoder) Init(src io.ByteReader) {
	if src == nil {
		panic("src is nil")
	}
	d.src = src
	d.off = 0
}

// ReadRune decodes the next rune from the byte source. It fulfills the
// io.RuneReader interface.
//
// When the source is exhausted the error is io.EOF. A byte with the high bit
// set is reported as a *DecodeError wrapping ErrNonASCII; the byte stays
// consumed, and the next call moves on to the byte after it.
func (d *ASCIIDecoder) ReadRune() (rune, int, error) {
	start := d.off

	b, err := d.src.ReadByte()
	switch {
	case err == io.EOF:
		return 0, 0, io.EOF
	case err != nil:
		return 0, 0, &DecodeError{
			Offset: start,
			Reason: "read failed: " + err.Error(),
			Err:    err,
		}
	}
	d.off++

	if b >= runeSelf {
		return 0, 0, &DecodeError{
			Offset: start,
			Reason: fmt.Sprintf("non-ASCII byte 0x%02X", b),
			Err:    ErrNonASCII,
		}
	}
	return rune(b), 1, nil
}

// Offset returns the total number of bytes consumed from the byte source so
// far, including any rejected bytes.
func (d *ASCIIDecoder) Offset() uint64 {
	return d.off
}

// Name fulfills the RuneDecoder interface. It returns "us-ascii".
func (d *ASCIIDecoder) Name() string {
	return "us-ascii"
}

// Max fulfills the RuneDecoder interface. It returns 1.
func (d *ASCIIDecoder) Max() int {
	return 1
}

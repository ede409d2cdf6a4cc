package runeio

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// UTF-8 encodes each scalar value as 1 to 4 bytes. The lead byte announces
// the length of its sequence in its high bits and carries the top bits of
// the value; each later byte matches 10xxxxxx and carries six more bits.
const (
	runeSelf = 0x80 // bytes below runeSelf decode to themselves

	t2 = 0xC0 // 110xxxxx, lead byte of a 2-byte sequence
	t3 = 0xE0 // 1110xxxx, lead byte of a 3-byte sequence
	t4 = 0xF0 // 11110xxx, lead byte of a 4-byte sequence
	t5 = 0xF8 // 11111xxx, not a legal lead byte

	mask2 = 0x1F // value bits of a 2-byte lead
	mask3 = 0x0F // value bits of a 3-byte lead
	mask4 = 0x07 // value bits of a 4-byte lead
	maskx = 0x3F // value bits of a continuation byte

	locb = 0x80 // lowest legal continuation byte
	hicb = 0xBF // highest legal continuation byte
)

// Decoder decodes a stream of UTF-8 bytes into runes, one call at a time.
//
// A Decoder pulls bytes from its source only as each ReadRune call needs
// them and keeps no buffer of its own, so it can sit directly on top of any
// io.ByteReader. Wrap a plain io.Reader in a bufio.Reader first: calling
// ReadByte on an unbuffered source such as a network connection or an
// os.File is correct but slow.
//
// Decoders are not safe for concurrent use.
type Decoder struct {
	// src is the byte source being decoded.
	src io.ByteReader

	// off counts the bytes consumed from src so far.
	off uint64
}

// NewDecoder constructs a new Decoder with the given byte source.
//
// `d := NewDecoder(src)` is exactly equivalent to `d := new(Decoder)`
// followed by `d.Init(src)`.
func NewDecoder(src io.ByteReader) *Decoder {
	d := new(Decoder)
	d.Init(src)
	return d
}

// Init initializes this Decoder with the given byte source. Init is also
// useful for re-using an existing Decoder, as it completely re-initializes
// it to decode the new source from a zero byte offset.
//
// The source MUST NOT be nil.
func (d *Decoder) Init(src io.ByteReader) {
	if src == nil {
		panic("src is nil")
	}
	d.src = src
	d.off = 0
}

// ReadRune decodes the next rune from the byte source and returns it along
// with the number of bytes it occupied. It fulfills the io.RuneReader
// interface.
//
// When the source is exhausted before the first byte of a new sequence, the
// stream ended cleanly and the error is io.EOF. Every other failure is
// reported as a *DecodeError. A failure does not poison the Decoder: the
// bytes of the rejected sequence stay consumed, and the next call starts a
// fresh sequence at the next unread byte.
//
// ReadRune checks that each decoded value is a Unicode scalar value, but it
// does not reject overlong encodings: a sequence that spends more bytes on
// its value than the shortest form would decodes without error.
func (d *Decoder) ReadRune() (rune, int, error) {
	start := d.off

	lead, err := d.readByte()
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

	var r rune
	var n int
	switch {
	case lead < runeSelf:
		return rune(lead), 1, nil
	case lead < t2 || lead >= t5:
		return 0, 0, &DecodeError{
			Offset: start,
			Reason: fmt.Sprintf("invalid lead byte 0x%02X", lead),
			Err:    ErrInvalidLeadByte,
		}
	case lead < t3:
		r, n = rune(lead&mask2), 2
	case lead < t4:
		r, n = rune(lead&mask3), 3
	default:
		r, n = rune(lead&mask4), 4
	}

	for i := 1; i < n; i++ {
		b, err := d.readByte()
		switch {
		case err == io.EOF:
			return 0, 0, &DecodeError{
				Offset: start,
				Reason: fmt.Sprintf("stream ended %d byte(s) into a %d-byte sequence", i, n),
				Err:    io.ErrUnexpectedEOF,
			}
		case err != nil:
			return 0, 0, &DecodeError{
				Offset: start,
				Reason: "read failed: " + err.Error(),
				Err:    err,
			}
		case b < locb || b > hicb:
			return 0, 0, &DecodeError{
				Offset: start,
				Reason: fmt.Sprintf("invalid continuation byte 0x%02X at offset %d", b, d.off-1),
				Err:    ErrInvalidContinuation,
			}
		}
		r = r<<6 | rune(b&maskx)
	}

	if !utf8.ValidRune(r) {
		return 0, 0, &DecodeError{
			Offset: start,
			Reason: fmt.Sprintf("decoded to %U, which is not a Unicode scalar value", r),
			Err:    ErrInvalidScalar,
		}
	}
	return r, n, nil
}

// Offset returns the total number of bytes consumed from the byte source so
// far, including the bytes of any rejected sequences.
func (d *Decoder) Offset() uint64 {
	return d.off
}

// Name fulfills the RuneDecoder interface. It returns "utf-8".
func (d *Decoder) Name() string {
	return "utf-8"
}

// Max fulfills the RuneDecoder interface. It returns utf8.UTFMax.
func (d *Decoder) Max() int {
	return utf8.UTFMax
}

// readByte reads one byte from the source, counting it as consumed only if
// the read succeeded.
func (d *Decoder) readByte() (byte, error) {
	b, err := d.src.ReadByte()
	if err == nil {
		d.off++
	}
	return b, err
}

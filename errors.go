package runeio

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the ways a byte sequence can be rejected.
// ReadRune never returns these directly: each failure is reported as a
// *DecodeError wrapping the matching sentinel, so classify with errors.Is.
var (
	// ErrInvalidLeadByte indicates a sequence began with a byte that can
	// never start one: a stray continuation byte, or a byte of the form
	// 11111xxx.
	ErrInvalidLeadByte = errors.New("runeio: invalid lead byte")

	// ErrInvalidContinuation indicates a byte inside a multi-byte sequence
	// did not match the 10xxxxxx continuation pattern.
	ErrInvalidContinuation = errors.New("runeio: invalid continuation byte")

	// ErrInvalidScalar indicates a structurally well-formed sequence decoded
	// to a value outside the Unicode scalar range: a surrogate, or a value
	// above U+10FFFF.
	ErrInvalidScalar = errors.New("runeio: invalid scalar value")

	// ErrNonASCII indicates ASCIIDecoder read a byte with the high bit set.
	ErrNonASCII = errors.New("runeio: non-ASCII byte")
)

// DecodeError reports where in the byte stream decoding failed, and why.
//
// Offset is the offset of the first byte of the sequence being decoded when
// the failure occurred, not the offset of the offending byte itself. Err is
// one of the sentinel errors above, io.ErrUnexpectedEOF for a stream that
// ended partway through a sequence, or the byte source's own error.
type DecodeError struct {
	// Offset is the byte offset at which the failed sequence began.
	Offset uint64

	// Reason describes the failure, naming the offending byte or value when
	// there is one.
	Reason string

	// Err is the underlying error kind.
	Err error
}

// Error fulfills the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("runeio: offset %d: %s", e.Offset, e.Reason)
}

// Unwrap supports errors.Is and errors.As.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

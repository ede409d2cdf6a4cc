package runeio

import (
	"io"
)

// RuneDecoder is the interface shared by the pull decoders in this package.
// It extends io.RuneReader with methods describing the charset being decoded
// and the position of the decoder within its byte source.
type RuneDecoder interface {
	io.RuneReader

	// Name returns the name of the charset.
	Name() string

	// Max returns the maximum number of bytes per rune.
	Max() int

	// Offset returns the number of bytes consumed from the byte source.
	Offset() uint64
}

var (
	_ RuneDecoder = (*Decoder)(nil)
	_ RuneDecoder = (*ASCIIDecoder)(nil)
)

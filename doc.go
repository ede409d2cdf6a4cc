// Package runeio decodes streams of bytes into streams of Unicode scalar
// values, one rune per call, without reading ahead.
//
// The package is built to sit at the bottom of a lexer or scanner pipeline:
// a Decoder pulls bytes from an io.ByteReader exactly as each rune needs
// them, reports a precise byte offset with every failure, and keeps going
// after rejecting a malformed sequence.
//
// # Basic Usage
//
// Construct a Decoder around any io.ByteReader and call ReadRune until it
// returns io.EOF:
//
//	d := runeio.NewDecoder(bufio.NewReader(f))
//	for {
//		ch, _, err := d.ReadRune()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		process(ch)
//	}
//
// Or range over the decoder with an iterator:
//
//	for ch, err := range runeio.All(d) {
//		if err != nil {
//			return err
//		}
//		process(ch)
//	}
//
// Runes and Positions are looser variants of All for callers that do not
// need to see the error that ended the stream.
//
// # Design Principles
//
// The decoders are forward-only. There is no UnreadRune and no rewinding;
// a lexer that needs lookahead should keep its own backlog of decoded runes.
//
// The decoders hold no buffer. Every byte is pulled from the source on
// demand, so sources that cross a syscall boundary, such as files and
// network connections, should be wrapped in a bufio.Reader first.
//
// Byte accounting is exact. Offset reports precisely the bytes consumed
// from the source, whether the sequences they formed were accepted or
// rejected, so error positions in diagnostics can be trusted.
//
// # Errors
//
// ReadRune distinguishes a clean end of stream from every kind of failure.
// io.EOF is returned bare, and only when the source was exhausted before the
// first byte of a new sequence. Each failure is reported as a *DecodeError
// carrying the byte offset at which the failed sequence began and wrapping
// the underlying kind: ErrInvalidLeadByte, ErrInvalidContinuation, or
// ErrInvalidScalar for malformed input, io.ErrUnexpectedEOF for a stream
// that ended partway through a sequence, and the source's own error when a
// read fails. Classify with errors.Is:
//
//	ch, _, err := d.ReadRune()
//	if errors.Is(err, runeio.ErrInvalidContinuation) {
//		...
//	}
//
// A failure consumes the bytes read while detecting it and nothing more.
// The decoder is never poisoned: the next ReadRune starts a fresh sequence
// at the next unread byte.
//
// # Validation
//
// Decoder rejects sequences that are structurally malformed and values
// outside the Unicode scalar range (surrogates, and values above U+10FFFF).
// It does not reject overlong encodings, so it MUST NOT be used as a
// security filter for untrusted input; callers that need exact UTF-8
// validation should validate the decoded text separately. ASCIIDecoder is
// stricter, rejecting every byte with the high bit set.
package runeio

package runeio

import (
	"io"
	"iter"
)

// All returns an iterator over the runes decoded from r, paired with the
// error that stopped decoding, if any.
//
// Each rune is yielded as (rune, nil). At a clean end of stream the sequence
// simply ends; io.EOF itself is never yielded. Any other failure is yielded
// once as (0, err) and the sequence ends. Decoders in this package are not
// poisoned by failure, so ranging over All a second time resumes decoding
// after the rejected bytes.
func All(r io.RuneReader) iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for {
			ch, _, err := r.ReadRune()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(ch, nil) {
				return
			}
		}
	}
}

// Runes returns an iterator over the runes decoded from r.
//
// The sequence ends at the first error of any kind: a clean end of stream,
// malformed input, and source read failures all end it the same silent way.
// That trade is deliberate, favoring loop ergonomics over diagnostics.
// Callers that need to tell these apart should use All, or call ReadRune
// directly.
func Runes(r io.RuneReader) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			ch, _, err := r.ReadRune()
			if err != nil || !yield(ch) {
				return
			}
		}
	}
}

// Positions returns an iterator over the runes decoded from r, keyed by the
// Position at which each rune starts. Line and column bookkeeping follows
// Position.Advance. Like Runes, the sequence ends silently at the first
// error of any kind.
func Positions(r io.RuneReader) iter.Seq2[Position, rune] {
	return func(yield func(Position, rune) bool) {
		pos := StartPosition()
		for {
			ch, size, err := r.ReadRune()
			if err != nil {
				return
			}
			if !yield(pos, ch) {
				return
			}
			pos.Advance(ch, size)
		}
	}
}

package runeio

import (
	"testing"
)

// loopSource yields its data bytes over and over, never reaching EOF.
type loopSource struct {
	data []byte
	i    int
}

func (s *loopSource) ReadByte() (byte, error) {
	if s.i == len(s.data) {
		s.i = 0
	}
	b := s.data[s.i]
	s.i++
	return b, nil
}

func BenchmarkDecoder_ascii(b *testing.B) {
	d := NewDecoder(&loopSource{data: []byte("the quick brown fox jumps over the lazy dog\n")})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := d.ReadRune(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecoder_multibyte(b *testing.B) {
	d := NewDecoder(&loopSource{data: []byte("日本語のテキストを復号する\n")})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := d.ReadRune(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecoder_mixed(b *testing.B) {
	d := NewDecoder(&loopSource{data: []byte("English español 日本語 😀\r\n")})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := d.ReadRune(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkASCIIDecoder(b *testing.B) {
	d := NewASCIIDecoder(&loopSource{data: []byte("the quick brown fox jumps over the lazy dog\n")})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := d.ReadRune(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAll_mixed(b *testing.B) {
	d := NewDecoder(&loopSource{data: []byte("English español 日本語 😀\r\n")})
	b.ReportAllocs()
	n := 0
	for _, err := range All(d) {
		if err != nil {
			b.Fatal(err)
		}
		n++
		if n == b.N {
			break
		}
	}
}

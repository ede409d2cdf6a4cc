package runeio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_clean(t *testing.T) {
	d := NewDecoder(strings.NewReader("héllo"))

	var got []rune
	for ch, err := range All(d) {
		require.NoError(t, err)
		got = append(got, ch)
	}
	assert.Equal(t, []rune{'h', 'é', 'l', 'l', 'o'}, got)
	assert.Equal(t, uint64(6), d.Offset())

	// The source is drained, so ranging again yields nothing.
	for ch, err := range All(d) {
		t.Errorf("unexpected item: %q, %v", ch, err)
	}
}

func TestAll_empty(t *testing.T) {
	d := NewDecoder(bytes.NewReader(nil))

	for ch, err := range All(d) {
		t.Errorf("unexpected item: %q, %v", ch, err)
	}
}

func TestAll_error(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte{'A', 0xFF, 'B'}))

	var got []rune
	var errs []error
	for ch, err := range All(d) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, ch)
	}
	assert.Equal(t, []rune{'A'}, got)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], ErrInvalidLeadByte)

	// The rejected byte stays consumed, so ranging again picks up at 'B'.
	got = nil
	for ch, err := range All(d) {
		require.NoError(t, err)
		got = append(got, ch)
	}
	assert.Equal(t, []rune{'B'}, got)
}

func TestAll_earlyBreak(t *testing.T) {
	d := NewDecoder(strings.NewReader("abc"))

	for ch, err := range All(d) {
		require.NoError(t, err)
		assert.Equal(t, 'a', ch)
		break
	}
	assert.Equal(t, uint64(1), d.Offset())

	ch, _, err := d.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'b', ch)
}

func TestRunes_silent(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte{'A', 0xC3, 0xA9, 0xFF, 'B'}))

	var got []rune
	for ch := range Runes(d) {
		got = append(got, ch)
	}
	assert.Equal(t, []rune{'A', 'é'}, got)
	assert.Equal(t, uint64(4), d.Offset())

	// The stop is silent but not sticky.
	ch, _, err := d.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'B', ch)
}

func TestRunes_empty(t *testing.T) {
	d := NewDecoder(bytes.NewReader(nil))

	for ch := range Runes(d) {
		t.Errorf("unexpected rune: %q", ch)
	}
}

func TestPositions_lines(t *testing.T) {
	type pair struct {
		Pos Position
		Ch  rune
	}

	d := NewDecoder(strings.NewReader("a\n日b"))

	var got []pair
	for pos, ch := range Positions(d) {
		got = append(got, pair{pos, ch})
	}

	expected := []pair{
		{At(0, 1, 1), 'a'},
		{At(1, 1, 2), '\n'},
		{At(2, 2, 1), '日'},
		{At(5, 2, 2), 'b'},
	}
	assert.Equal(t, expected, got)
}

func TestPositions_earlyBreak(t *testing.T) {
	d := NewDecoder(strings.NewReader("xyz"))

	for pos, ch := range Positions(d) {
		assert.Equal(t, At(0, 1, 1), pos)
		assert.Equal(t, 'x', ch)
		break
	}
	assert.Equal(t, uint64(1), d.Offset())
}

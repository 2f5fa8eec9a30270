// Package cipher implements the cyclic multi-key Caesar substitution driven by
// a dial key schedule.
//
// Letters a-z and A-Z are upper-cased and rotated by the schedule entry for
// their counter; every other character, including invalid UTF-8, is copied
// through byte for byte. An empty schedule rotates by zero. All functions are
// pure and safe for concurrent use.
package cipher

import (
	"strings"
	"unicode/utf8"

	"shiftdial/internal/domain"
)

// Encode rotates letters forward, indexing the schedule by character position.
func Encode(text string, s domain.KeySchedule) string {
	return Apply(text, s, domain.Encode, domain.IndexByPosition)
}

// Decode reverses Encode for the same schedule.
func Decode(text string, s domain.KeySchedule) string {
	return Apply(text, s, domain.Decode, domain.IndexByPosition)
}

// Apply runs the substitution in direction dir. Any direction other than
// domain.Decode encodes. With domain.IndexByPosition the counter is the rune
// position in text; with domain.IndexByLetter only letters advance it.
func Apply(text string, s domain.KeySchedule, dir domain.Direction, idx domain.Indexing) string {
	var b strings.Builder
	b.Grow(len(text))

	pos, letters := 0, 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' {
			n := pos
			if idx == domain.IndexByLetter {
				n = letters
			}
			b.WriteByte(shiftLetter(byte(r), s.At(n), dir))
			letters++
		} else {
			b.WriteString(text[i : i+size])
		}
		pos++
		i += size
	}
	return b.String()
}

// shiftLetter rotates the upper-case letter c by shift.
func shiftLetter(c byte, shift int, dir domain.Direction) byte {
	shift = ((shift % domain.AlphabetSize) + domain.AlphabetSize) % domain.AlphabetSize
	if dir == domain.Decode {
		shift = domain.AlphabetSize - shift
	}
	return 'A' + byte((int(c-'A')+shift)%domain.AlphabetSize)
}

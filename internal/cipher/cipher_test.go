package cipher_test

import (
	"testing"

	"shiftdial/internal/cipher"
	"shiftdial/internal/domain"
)

func TestEncode_Examples(t *testing.T) {
	cases := []struct {
		name string
		in   string
		s    domain.KeySchedule
		want string
	}{
		{"empty schedule raises case only", "HELLO, world! 42", domain.KeySchedule{}, "HELLO, WORLD! 42"},
		{"nil schedule", "abc", nil, "ABC"},
		{"single shift wraps Z", "ABZ", domain.KeySchedule{1}, "BCA"},
		{"cyclic two shifts", "ABCDE", domain.KeySchedule{1, 2}, "BDDFF"},
		{"mixed case and symbols", "Hi-5!", domain.KeySchedule{3}, "KL-5!"},
		{"zero shift kept", "ABC", domain.KeySchedule{0, 1}, "ACC"},
		{"empty text", "", domain.KeySchedule{4}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cipher.Encode(tc.in, tc.s); got != tc.want {
				t.Fatalf("Encode(%q, %v) = %q, want %q", tc.in, tc.s, got, tc.want)
			}
		})
	}
}

func TestApply_PositionIndexingCountsNonLetters(t *testing.T) {
	// positions: A=0 (+1), ' '=1, B=2 (+1)
	got := cipher.Apply("A B", domain.KeySchedule{1, 5}, domain.Encode, domain.IndexByPosition)
	if got != "B C" {
		t.Fatalf("got %q, want %q", got, "B C")
	}
}

func TestApply_LetterIndexingSkipsNonLetters(t *testing.T) {
	// letters: A=0 (+1), B=1 (+5)
	got := cipher.Apply("A B", domain.KeySchedule{1, 5}, domain.Encode, domain.IndexByLetter)
	if got != "B G" {
		t.Fatalf("got %q, want %q", got, "B G")
	}
}

func TestDecode_InvertsEncode(t *testing.T) {
	schedules := []domain.KeySchedule{nil, {0}, {25}, {1, 2}, {3, 0, 25, 13, 7}}
	texts := []string{"", "attack at dawn!", "Hi-5!", "ZZZ zzz", "héllo wörld ß", "\xff\xfeAB"}
	for _, idx := range []domain.Indexing{domain.IndexByPosition, domain.IndexByLetter} {
		for _, s := range schedules {
			for _, text := range texts {
				enc := cipher.Apply(text, s, domain.Encode, idx)
				dec := cipher.Apply(enc, s, domain.Decode, idx)
				if want := upperASCII(text); dec != want {
					t.Fatalf("%s %v %q: round trip = %q, want %q", idx, s, text, dec, want)
				}
			}
		}
	}
}

func TestApply_PreservesNonLetters(t *testing.T) {
	in := "ß€ 1,2;3\t\xff"
	got := cipher.Encode(in, domain.KeySchedule{9})
	if got != in {
		t.Fatalf("non-letters changed: %q -> %q", in, got)
	}
}

func TestApply_PositionCountsRunes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		// one position each, however many bytes they take
		{"astral rune", "😀A", "😀F"},
		{"two-byte rune", "éA", "éF"},
		{"invalid byte", "\xffA", "\xffF"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cipher.Apply(tc.in, domain.KeySchedule{1, 5}, domain.Encode, domain.IndexByPosition)
			if got != tc.want {
				t.Fatalf("Apply(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestApply_OutOfRangeShiftsWrap(t *testing.T) {
	if got := cipher.Encode("A", domain.KeySchedule{27}); got != "B" {
		t.Fatalf("shift 27: got %q", got)
	}
	if got := cipher.Encode("A", domain.KeySchedule{-1}); got != "Z" {
		t.Fatalf("shift -1: got %q", got)
	}
}

func TestApply_UnknownDirectionEncodes(t *testing.T) {
	got := cipher.Apply("A", domain.KeySchedule{1}, domain.Direction("sideways"), domain.IndexByPosition)
	if got != "B" {
		t.Fatalf("got %q, want B", got)
	}
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

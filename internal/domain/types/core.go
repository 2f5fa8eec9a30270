package types

import (
	"errors"
	"fmt"
	"strings"
)

// AlphabetSize is the number of letters a shift can rotate through.
const AlphabetSize = 26

// ErrUnknownDirection is returned when a direction name is not encode or decode.
var ErrUnknownDirection = errors.New("unknown direction")

// ErrUnknownIndexing is returned when an indexing mode name is not recognised.
var ErrUnknownIndexing = errors.New("unknown indexing mode")

// Direction selects whether a schedule is added to or subtracted from letters.
type Direction string

const (
	Encode Direction = "encode"
	Decode Direction = "decode"
)

// String returns the string form of the direction.
func (d Direction) String() string { return string(d) }

// ParseDirection accepts encode/decode and the cipher/decipher aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encode", "cipher", "":
		return Encode, nil
	case "decode", "decipher":
		return Decode, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Indexing selects which counter picks the schedule entry for a letter.
type Indexing string

const (
	// IndexByPosition uses the character position in the text, so punctuation
	// and spaces still advance the schedule.
	IndexByPosition Indexing = "position"
	// IndexByLetter advances the schedule only on letters.
	IndexByLetter Indexing = "letter"
)

// String returns the string form of the indexing mode.
func (i Indexing) String() string { return string(i) }

// ParseIndexing maps a config or flag value onto an Indexing mode.
// The empty string selects IndexByPosition.
func ParseIndexing(s string) (Indexing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "position", "":
		return IndexByPosition, nil
	case "letter":
		return IndexByLetter, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIndexing, s)
}

// Fingerprint is a short identifier for key schedules presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

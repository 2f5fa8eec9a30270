package domain

import (
	interfaces "shiftdial/internal/domain/interfaces"
	types "shiftdial/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Direction     = types.Direction
	Indexing      = types.Indexing
	Fingerprint   = types.Fingerprint
	DialSlot      = types.DialSlot
	KeySchedule   = types.KeySchedule
	DialReading   = types.DialReading
	CipherRequest = types.CipherRequest
	CipherResult  = types.CipherResult
)

// Interface aliases expose service contracts.
type (
	CipherService = interfaces.CipherService
	DialService   = interfaces.DialService
)

const (
	AlphabetSize    = types.AlphabetSize
	Encode          = types.Encode
	Decode          = types.Decode
	IndexByPosition = types.IndexByPosition
	IndexByLetter   = types.IndexByLetter
)

var (
	ErrUnknownDirection = types.ErrUnknownDirection
	ErrUnknownIndexing  = types.ErrUnknownIndexing
	ParseDirection      = types.ParseDirection
	ParseIndexing       = types.ParseIndexing
)

package dial

import (
	"shiftdial/internal/domain"
	"shiftdial/internal/schedule"
)

// DefaultDials is the number of dials on a standard board.
const DefaultDials = 5

// Board is an ordered row of dials.
type Board struct {
	dials []Dial
}

// NewBoard returns a board of n idle, inactive dials. Negative n is treated
// as zero.
func NewBoard(n int) *Board {
	if n < 0 {
		n = 0
	}
	return &Board{dials: make([]Dial, n)}
}

// Len returns the number of dials.
func (b *Board) Len() int { return len(b.dials) }

// Dial returns the i-th dial, or nil when i is out of range.
func (b *Board) Dial(i int) *Dial {
	if i < 0 || i >= len(b.dials) {
		return nil
	}
	return &b.dials[i]
}

// Slots returns the committed value of every dial in board order.
func (b *Board) Slots() []domain.DialSlot {
	out := make([]domain.DialSlot, len(b.dials))
	for i := range b.dials {
		out[i] = b.dials[i].Slot()
	}
	return out
}

// Schedule returns the key schedule of the active dials in board order.
func (b *Board) Schedule() domain.KeySchedule {
	return schedule.Build(b.Slots())
}

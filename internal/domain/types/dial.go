package types

// DialSlot is the committed value of one dial as seen by the key schedule.
// Active is explicit so a dial set to shift 0 is distinct from an empty dial.
type DialSlot struct {
	Shift  int  `json:"shift"`
	Active bool `json:"active"`
}

// KeySchedule is the ordered list of shifts taken from the active dials.
type KeySchedule []int

// Len returns the number of shifts in the schedule.
func (s KeySchedule) Len() int { return len(s) }

// At returns the shift used for counter i. An empty schedule yields 0 for
// every counter.
func (s KeySchedule) At(i int) int {
	if len(s) == 0 {
		return 0
	}
	return s[i%len(s)]
}

// DialReading reports how an angle or override maps onto the dial grid.
type DialReading struct {
	Angle      float64 `json:"angle"`      // raw input angle in degrees
	Normalized float64 `json:"normalized"` // Angle reduced to [0,360)
	Shift      int     `json:"shift"`      // shift index in [0,26)
	Snapped    float64 `json:"snapped"`    // canonical grid angle for Shift
}

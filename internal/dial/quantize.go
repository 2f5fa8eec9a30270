package dial

import (
	"math"

	"shiftdial/internal/domain"
)

// Positions is the number of discrete stops on a dial.
const Positions = domain.AlphabetSize

// SnapAngle is the angular width of one stop in degrees (360/26).
const SnapAngle = 360.0 / Positions

// NormalizeAngle reduces any angle in degrees to [0,360).
// Non-finite input maps to 0.
func NormalizeAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	// -tiny + 360 rounds up to 360 in float64; -0 stays negative zero.
	if a >= 360 || a == 0 {
		return 0
	}
	return a
}

// AngleToShift returns the shift index in [0,26) nearest to angle.
// Ties round away from zero; 360 - ε wraps to 0.
func AngleToShift(angle float64) int {
	steps := int(math.Round(NormalizeAngle(angle) / SnapAngle))
	return steps % Positions
}

// ShiftToAngle returns the canonical grid angle for shift, wrapping out of
// range values first.
func ShiftToAngle(shift int) float64 {
	return float64(WrapShift(shift)) * SnapAngle
}

// WrapShift reduces a numeric override into [0,26) (-1 becomes 25).
func WrapShift(shift int) int {
	return ((shift % Positions) + Positions) % Positions
}

// PointerAngle returns the angle in degrees of the point (x, y) around the
// centre (cx, cy), in (-180,180].
func PointerAngle(x, y, cx, cy float64) float64 {
	return math.Atan2(y-cy, x-cx) * (180 / math.Pi)
}

// Read reports how angle lands on the grid.
func Read(angle float64) domain.DialReading {
	shift := AngleToShift(angle)
	return domain.DialReading{
		Angle:      angle,
		Normalized: NormalizeAngle(angle),
		Shift:      shift,
		Snapped:    ShiftToAngle(shift),
	}
}

// ReadOverride reports the grid position for a numeric override.
func ReadOverride(value int) domain.DialReading {
	shift := WrapShift(value)
	a := ShiftToAngle(shift)
	return domain.DialReading{
		Angle:      a,
		Normalized: a,
		Shift:      shift,
		Snapped:    a,
	}
}

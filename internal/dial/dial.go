package dial

import (
	"math"

	"shiftdial/internal/domain"
)

// State is the drag state of a dial.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Dial is one rotary control. The zero value is an idle, inactive dial at 0°.
type Dial struct {
	angle  float64 // raw rotation, not normalized
	grab   float64 // pointer angle minus rotation at drag start
	state  State
	shift  int
	active bool
}

// BeginDrag starts a drag with the pointer at (x, y) around the dial centre
// (cx, cy). The grab offset keeps the dial from jumping to the pointer.
func (d *Dial) BeginDrag(x, y, cx, cy float64) {
	d.state = Dragging
	d.grab = PointerAngle(x, y, cx, cy) - d.angle
}

// DragTo moves the dial to follow the pointer. It reports false when the dial
// is not being dragged.
func (d *Dial) DragTo(x, y, cx, cy float64) bool {
	if d.state != Dragging {
		return false
	}
	d.angle = PointerAngle(x, y, cx, cy) - d.grab
	return true
}

// Rotate adds delta degrees to the raw angle, starting a drag if idle.
func (d *Dial) Rotate(delta float64) {
	if d.state != Dragging {
		d.state = Dragging
		d.grab = 0
	}
	d.angle += delta
}

// EndDrag snaps the dial to the nearest grid line and commits its shift.
// It reports false, leaving the dial untouched, when no drag is in progress.
func (d *Dial) EndDrag() (int, bool) {
	if d.state != Dragging {
		return d.shift, false
	}
	snapped := math.Round(d.angle/SnapAngle) * SnapAngle
	d.angle = snapped
	d.shift = AngleToShift(snapped)
	d.active = true
	d.state = Idle
	return d.shift, true
}

// Override sets the shift from a numeric entry, wraps it into [0,26) and
// moves the dial to the matching grid angle. A drag in progress is dropped.
func (d *Dial) Override(value int) int {
	d.shift = WrapShift(value)
	d.angle = ShiftToAngle(d.shift)
	d.active = true
	d.state = Idle
	return d.shift
}

// Clear marks the dial empty so it no longer contributes to the schedule.
func (d *Dial) Clear() {
	d.active = false
	d.state = Idle
}

// Angle returns the raw rotation in degrees.
func (d *Dial) Angle() float64 { return d.angle }

// DisplayAngle returns the rotation normalized to [0,360) for rendering.
func (d *Dial) DisplayAngle() float64 { return NormalizeAngle(d.angle) }

// Shift returns the last committed shift index.
func (d *Dial) Shift() int { return d.shift }

// PreviewShift returns the shift the dial would commit if released now.
func (d *Dial) PreviewShift() int { return AngleToShift(d.angle) }

// Active reports whether the dial holds a committed shift.
func (d *Dial) Active() bool { return d.active }

// State returns the current drag state.
func (d *Dial) State() State { return d.state }

// Slot returns the committed value for key-schedule assembly.
func (d *Dial) Slot() domain.DialSlot {
	return domain.DialSlot{Shift: d.shift, Active: d.active}
}

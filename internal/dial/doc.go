// Package dial quantizes rotary dial angles onto the 26-position shift grid.
//
// Contents
//
//   - Angle math: NormalizeAngle, AngleToShift, ShiftToAngle, WrapShift and
//     PointerAngle. These are pure and safe for concurrent use.
//   - Dial: a per-dial drag state machine {Idle, Dragging}. BeginDrag records
//     the grab offset, DragTo and Rotate move the raw angle, EndDrag snaps to
//     the grid and commits the shift. Override sets a shift directly.
//   - Board: a fixed row of dials that assembles the active key schedule.
//
// # Notes
//
// Dial and Board values hold UI state and are not safe for concurrent use;
// the owner serialises events per dial.
package dial

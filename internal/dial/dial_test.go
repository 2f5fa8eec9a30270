package dial_test

import (
	"errors"
	"testing"

	"shiftdial/internal/dial"
	"shiftdial/internal/domain"
)

func TestDial_ZeroValue(t *testing.T) {
	var d dial.Dial
	if d.State() != dial.Idle || d.Active() || d.Shift() != 0 || d.Angle() != 0 {
		t.Fatalf("unexpected zero dial: state=%v active=%v shift=%d", d.State(), d.Active(), d.Shift())
	}
	if _, ok := d.EndDrag(); ok {
		t.Fatal("EndDrag on idle dial reported a commit")
	}
	if d.DragTo(1, 1, 0, 0) {
		t.Fatal("DragTo on idle dial moved it")
	}
}

func TestDial_DragSnapsAndCommits(t *testing.T) {
	var d dial.Dial
	d.BeginDrag(1, 0, 0, 0) // 0°
	if d.State() != dial.Dragging {
		t.Fatalf("state = %v, want dragging", d.State())
	}
	if !d.DragTo(1, 1, 0, 0) { // 45°
		t.Fatal("DragTo returned false while dragging")
	}
	if !near(d.Angle(), 45) {
		t.Fatalf("angle = %v, want 45", d.Angle())
	}
	if d.PreviewShift() != 3 {
		t.Fatalf("preview = %d, want 3", d.PreviewShift())
	}
	shift, ok := d.EndDrag()
	if !ok || shift != 3 {
		t.Fatalf("EndDrag = %d, %v; want 3, true", shift, ok)
	}
	if !near(d.Angle(), 3*dial.SnapAngle) || !d.Active() || d.State() != dial.Idle {
		t.Fatalf("after EndDrag: angle=%v active=%v state=%v", d.Angle(), d.Active(), d.State())
	}
}

func TestDial_GrabOffsetPreventsJump(t *testing.T) {
	var d dial.Dial
	d.Override(3)
	before := d.Angle()
	d.BeginDrag(0, 1, 0, 0) // grab at 90°, away from the dial's 41.5°
	d.DragTo(0, 1, 0, 0)
	if !near(d.Angle(), before) {
		t.Fatalf("dial jumped from %v to %v", before, d.Angle())
	}
	d.DragTo(-1, 0, 0, 0) // +90°
	if !near(d.Angle(), before+90) {
		t.Fatalf("angle = %v, want %v", d.Angle(), before+90)
	}
}

func TestDial_RotateNegativeWraps(t *testing.T) {
	var d dial.Dial
	d.Rotate(-10)
	if d.State() != dial.Dragging {
		t.Fatal("Rotate should start a drag")
	}
	shift, ok := d.EndDrag()
	if !ok || shift != 25 {
		t.Fatalf("EndDrag = %d, %v; want 25, true", shift, ok)
	}
	if !near(d.DisplayAngle(), 25*dial.SnapAngle) {
		t.Fatalf("display angle = %v", d.DisplayAngle())
	}
}

func TestDial_OverrideWrapsAndCancelsDrag(t *testing.T) {
	var d dial.Dial
	d.Rotate(30)
	if got := d.Override(-1); got != 25 {
		t.Fatalf("Override(-1) = %d, want 25", got)
	}
	if d.State() != dial.Idle || !d.Active() {
		t.Fatalf("state=%v active=%v", d.State(), d.Active())
	}
	if !near(d.Angle(), 25*dial.SnapAngle) {
		t.Fatalf("angle = %v", d.Angle())
	}
}

func TestDial_ClearKeepsShiftButDeactivates(t *testing.T) {
	var d dial.Dial
	d.Override(0)
	if got := d.Slot(); got != (domain.DialSlot{Shift: 0, Active: true}) {
		t.Fatalf("slot = %+v", got)
	}
	d.Clear()
	if d.Active() || d.Slot().Active {
		t.Fatal("Clear left the dial active")
	}
}

func TestBoard_Schedule(t *testing.T) {
	b := dial.NewBoard(dial.DefaultDials)
	if b.Len() != 5 {
		t.Fatalf("Len = %d", b.Len())
	}
	b.Dial(0).Override(0)
	b.Dial(2).Override(33)
	b.Dial(4).Rotate(2 * dial.SnapAngle)
	b.Dial(4).EndDrag()

	got := b.Schedule()
	want := domain.KeySchedule{0, 7, 2}
	if len(got) != len(want) {
		t.Fatalf("schedule = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("schedule = %v, want %v", got, want)
		}
	}
	if b.Dial(5) != nil || b.Dial(-1) != nil {
		t.Fatal("out of range dial should be nil")
	}
	if dial.NewBoard(-3).Len() != 0 {
		t.Fatal("negative board size should be empty")
	}
}

func TestParseSlots(t *testing.T) {
	got, err := dial.ParseSlots("3, ,0,-1,-")
	if err != nil {
		t.Fatalf("ParseSlots: %v", err)
	}
	want := []domain.DialSlot{{Shift: 3, Active: true}, {}, {Shift: 0, Active: true}, {Shift: 25, Active: true}, {}}
	if len(got) != len(want) {
		t.Fatalf("got %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slot %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if s := dial.FormatSlots(got); s != "3,,0,25," {
		t.Fatalf("FormatSlots = %q", s)
	}

	if _, err := dial.ParseSlots("1,x"); !errors.Is(err, dial.ErrInvalidSlot) {
		t.Fatalf("err = %v, want ErrInvalidSlot", err)
	}
	if slots, err := dial.ParseSlots("  "); err != nil || slots != nil {
		t.Fatalf("blank input: %v, %v", slots, err)
	}
}

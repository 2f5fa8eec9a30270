package schedule_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"shiftdial/internal/domain"
	"shiftdial/internal/schedule"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		slots []domain.DialSlot
		want  domain.KeySchedule
	}{
		{"no dials", nil, domain.KeySchedule{}},
		{"all inactive", []domain.DialSlot{{Shift: 4}, {Shift: 9}}, domain.KeySchedule{}},
		{
			"keeps order and explicit zero",
			[]domain.DialSlot{{Shift: 7, Active: true}, {}, {Shift: 0, Active: true}, {Shift: 3, Active: true}},
			domain.KeySchedule{7, 0, 3},
		},
		{
			"not sorted",
			[]domain.DialSlot{{Shift: 25, Active: true}, {Shift: 1, Active: true}},
			domain.KeySchedule{25, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, schedule.Build(tt.slots)); diff != "" {
				t.Fatalf("Build mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := schedule.Format(domain.KeySchedule{3, 0, 25}); got != "3,0,25" {
		t.Fatalf("Format = %q", got)
	}
	if got := schedule.Format(nil); got != "" {
		t.Fatalf("Format(nil) = %q", got)
	}
}

// Package schedule assembles key schedules from dial slots.
package schedule

import (
	"strconv"
	"strings"

	"shiftdial/internal/domain"
)

// Build returns the shifts of the active slots in slot order. Inactive slots
// are skipped; an active slot with shift 0 is kept. The result is never nil.
func Build(slots []domain.DialSlot) domain.KeySchedule {
	out := make(domain.KeySchedule, 0, len(slots))
	for _, s := range slots {
		if s.Active {
			out = append(out, s.Shift)
		}
	}
	return out
}

// Format renders a schedule as comma separated shifts, e.g. "3,0,25".
func Format(s domain.KeySchedule) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

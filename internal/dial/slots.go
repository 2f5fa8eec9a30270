package dial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"shiftdial/internal/domain"
)

// ErrInvalidSlot is returned when a dial entry is neither empty nor an integer.
var ErrInvalidSlot = errors.New("invalid dial entry")

// ParseSlots parses comma separated dial entries such as "3,,0,-1".
// Empty entries (and "-") are inactive dials; integers are wrapped into
// [0,26). An empty string yields no dials.
func ParseSlots(s string) ([]domain.DialSlot, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	slots := make([]domain.DialSlot, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || f == "-" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %q", ErrInvalidSlot, i+1, f)
		}
		slots[i] = domain.DialSlot{Shift: WrapShift(n), Active: true}
	}
	return slots, nil
}

// FormatSlots is the inverse of ParseSlots; inactive dials render empty.
func FormatSlots(slots []domain.DialSlot) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		if s.Active {
			parts[i] = strconv.Itoa(s.Shift)
		}
	}
	return strings.Join(parts, ",")
}

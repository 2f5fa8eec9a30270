package crypto_test

import (
	"testing"

	"shiftdial/internal/crypto"
	"shiftdial/internal/domain"
)

func TestFingerprint_Shape(t *testing.T) {
	fp := crypto.Fingerprint(domain.KeySchedule{3, 1, 4})
	if len(fp) != 20 {
		t.Fatalf("fingerprint length = %d, want 20", len(fp))
	}
	if fp != crypto.Fingerprint(domain.KeySchedule{3, 1, 4}) {
		t.Fatal("fingerprint not deterministic")
	}
}

func TestFingerprint_DistinguishesSchedules(t *testing.T) {
	seen := map[domain.Fingerprint]string{}
	for name, s := range map[string]domain.KeySchedule{
		"empty":     {},
		"zero":      {0},
		"zero-zero": {0, 0},
		"one-two":   {1, 2},
		"two-one":   {2, 1},
	} {
		fp := crypto.Fingerprint(s)
		if other, ok := seen[fp]; ok {
			t.Fatalf("%s and %s share fingerprint %s", name, other, fp)
		}
		seen[fp] = name
	}
}

func TestFingerprint_WrapsShifts(t *testing.T) {
	if crypto.Fingerprint(domain.KeySchedule{-1}) != crypto.Fingerprint(domain.KeySchedule{25}) {
		t.Fatal("-1 and 25 should fingerprint the same")
	}
}

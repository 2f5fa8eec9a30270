package crypto

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"shiftdial/internal/domain"
)

const fingerprintContext = "shiftdial/schedule/v1"

// Fingerprint returns a short hex fingerprint of a key schedule.
//
// It hashes a context label, the schedule length and each shift with
// BLAKE2b-256 and truncates to 10 bytes (20 hex chars). Shifts are wrapped
// into [0,26) first so equivalent schedules share a fingerprint.
func Fingerprint(s domain.KeySchedule) domain.Fingerprint {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	h.Write([]byte(fingerprintContext))
	buf := binary.AppendUvarint(make([]byte, 0, len(s)+binary.MaxVarintLen64), uint64(len(s)))
	for _, v := range s {
		buf = append(buf, byte(((v%domain.AlphabetSize)+domain.AlphabetSize)%domain.AlphabetSize))
	}
	h.Write(buf)
	sum := h.Sum(nil)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}

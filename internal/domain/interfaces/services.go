package interfaces

import (
	"context"

	domaintypes "shiftdial/internal/domain/types"
)

// CipherService applies a dial key schedule to text.
type CipherService interface {
	Apply(ctx context.Context, req domaintypes.CipherRequest) (domaintypes.CipherResult, error)
}

// DialService converts raw angles and numeric overrides into dial readings.
type DialService interface {
	Quantize(ctx context.Context, angle float64) (domaintypes.DialReading, error)
	Override(ctx context.Context, value int) (domaintypes.DialReading, error)
}

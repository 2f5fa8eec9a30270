package dial

import (
	"context"

	"go.uber.org/zap"

	grid "shiftdial/internal/dial"
	"shiftdial/internal/domain"
	"shiftdial/internal/logging"
)

// Service wraps the angle quantizer behind domain.DialService.
type Service struct {
	logger *zap.Logger
}

// New returns a dial service. A nil logger discards output.
func New(logger *zap.Logger) *Service { return &Service{logger: logging.OrNop(logger)} }

// Quantize maps a raw angle in degrees onto the grid.
func (s *Service) Quantize(ctx context.Context, angle float64) (domain.DialReading, error) {
	if err := ctx.Err(); err != nil {
		return domain.DialReading{}, err
	}
	r := grid.Read(angle)
	s.logger.Debug("quantized angle",
		zap.Float64("angle", angle),
		zap.Float64("normalized", r.Normalized),
		zap.Int("shift", r.Shift))
	return r, nil
}

// Override wraps a numeric dial entry into [0,26) and returns its grid angle.
func (s *Service) Override(ctx context.Context, value int) (domain.DialReading, error) {
	if err := ctx.Err(); err != nil {
		return domain.DialReading{}, err
	}
	r := grid.ReadOverride(value)
	s.logger.Debug("wrapped override", zap.Int("value", value), zap.Int("shift", r.Shift))
	return r, nil
}

// Compile-time assertion that Service implements domain.DialService.
var _ domain.DialService = (*Service)(nil)

package cipher

import (
	"context"

	"go.uber.org/zap"

	ciph "shiftdial/internal/cipher"
	"shiftdial/internal/crypto"
	"shiftdial/internal/dial"
	"shiftdial/internal/domain"
	"shiftdial/internal/logging"
	"shiftdial/internal/schedule"
)

// Service runs cipher requests against the local substitution.
//
// A request carries:
//   - The text to transform.
//   - The dial slots in board order; inactive slots are skipped.
//   - The direction, and optionally an indexing mode that overrides the
//     service default.
type Service struct {
	logger   *zap.Logger
	indexing domain.Indexing
}

// New returns a cipher service. A nil logger discards output; an empty
// indexing mode selects domain.IndexByPosition.
func New(logger *zap.Logger, indexing domain.Indexing) *Service {
	if indexing == "" {
		indexing = domain.IndexByPosition
	}
	return &Service{logger: logging.OrNop(logger), indexing: indexing}
}

// Apply builds the key schedule from req.Slots and encodes or decodes
// req.Text. Slot shifts are wrapped into [0,26) before use.
func (s *Service) Apply(ctx context.Context, req domain.CipherRequest) (domain.CipherResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.CipherResult{}, err
	}
	dir, err := domain.ParseDirection(string(req.Direction))
	if err != nil {
		return domain.CipherResult{}, err
	}
	idx := s.indexing
	if req.Indexing != "" {
		if idx, err = domain.ParseIndexing(string(req.Indexing)); err != nil {
			return domain.CipherResult{}, err
		}
	}

	slots := make([]domain.DialSlot, len(req.Slots))
	for i, sl := range req.Slots {
		slots[i] = domain.DialSlot{Shift: dial.WrapShift(sl.Shift), Active: sl.Active}
	}
	sched := schedule.Build(slots)
	fp := crypto.Fingerprint(sched)

	out := ciph.Apply(req.Text, sched, dir, idx)

	s.logger.Debug("applied key schedule",
		zap.Stringer("direction", dir),
		zap.Stringer("indexing", idx),
		zap.Int("dials", len(slots)),
		zap.Int("active", sched.Len()),
		zap.Stringer("fingerprint", fp),
		zap.Int("bytes", len(req.Text)))
	if sched.Len() == 0 {
		s.logger.Debug("no active dials; letters are only upper-cased")
	}

	return domain.CipherResult{
		Output:      out,
		Schedule:    sched,
		Fingerprint: fp,
	}, nil
}

// Encode is Apply with the encode direction.
func (s *Service) Encode(ctx context.Context, text string, slots []domain.DialSlot) (domain.CipherResult, error) {
	return s.Apply(ctx, domain.CipherRequest{Text: text, Slots: slots, Direction: domain.Encode})
}

// Decode is Apply with the decode direction.
func (s *Service) Decode(ctx context.Context, text string, slots []domain.DialSlot) (domain.CipherResult, error) {
	return s.Apply(ctx, domain.CipherRequest{Text: text, Slots: slots, Direction: domain.Decode})
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)

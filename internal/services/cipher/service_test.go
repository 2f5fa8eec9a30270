package cipher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"shiftdial/internal/crypto"
	"shiftdial/internal/domain"
	ciphersvc "shiftdial/internal/services/cipher"
)

func slots(vals ...int) []domain.DialSlot {
	out := make([]domain.DialSlot, len(vals))
	for i, v := range vals {
		if v >= 0 {
			out[i] = domain.DialSlot{Shift: v, Active: true}
		}
	}
	return out
}

func TestService_EncodeDecode(t *testing.T) {
	svc := ciphersvc.New(nil, "")
	ctx := context.Background()

	// -1 marks an inactive dial here
	s := slots(1, -1, 2, -1, -1)
	enc, err := svc.Encode(ctx, "abcde", s)
	require.NoError(t, err)
	require.Equal(t, "BDDFF", enc.Output)
	require.Equal(t, domain.KeySchedule{1, 2}, enc.Schedule)
	require.Equal(t, crypto.Fingerprint(domain.KeySchedule{1, 2}), enc.Fingerprint)

	dec, err := svc.Decode(ctx, enc.Output, s)
	require.NoError(t, err)
	require.Equal(t, "ABCDE", dec.Output)
}

func TestService_ZeroShiftDialStaysActive(t *testing.T) {
	svc := ciphersvc.New(nil, domain.IndexByPosition)
	res, err := svc.Encode(context.Background(), "AA", slots(0, 1))
	require.NoError(t, err)
	require.Equal(t, "AB", res.Output)
	require.Equal(t, domain.KeySchedule{0, 1}, res.Schedule)
}

func TestService_WrapsSlotShifts(t *testing.T) {
	svc := ciphersvc.New(nil, "")
	res, err := svc.Apply(context.Background(), domain.CipherRequest{
		Text:  "A",
		Slots: []domain.DialSlot{{Shift: -1, Active: true}},
	})
	require.NoError(t, err)
	require.Equal(t, "Z", res.Output)
	require.Equal(t, domain.KeySchedule{25}, res.Schedule)
}

func TestService_IndexingOverride(t *testing.T) {
	svc := ciphersvc.New(nil, domain.IndexByPosition)
	res, err := svc.Apply(context.Background(), domain.CipherRequest{
		Text:      "A B",
		Slots:     slots(1, 5),
		Direction: domain.Encode,
		Indexing:  domain.IndexByLetter,
	})
	require.NoError(t, err)
	require.Equal(t, "B G", res.Output)
}

func TestService_RejectsUnknownDirection(t *testing.T) {
	svc := ciphersvc.New(nil, "")
	_, err := svc.Apply(context.Background(), domain.CipherRequest{Text: "A", Direction: "sideways"})
	require.True(t, errors.Is(err, domain.ErrUnknownDirection), "got %v", err)

	_, err = svc.Apply(context.Background(), domain.CipherRequest{Text: "A", Indexing: "word"})
	require.True(t, errors.Is(err, domain.ErrUnknownIndexing), "got %v", err)
}

func TestService_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ciphersvc.New(nil, "").Encode(ctx, "A", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestService_LogsWithoutPlaintext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := ciphersvc.New(zap.New(core), "")

	_, err := svc.Encode(context.Background(), "secret words", slots(3))
	require.NoError(t, err)

	entries := logs.FilterMessage("applied key schedule").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, int64(1), fields["active"])
	require.Equal(t, "encode", fields["direction"])
	for _, v := range fields {
		require.NotEqual(t, "secret words", v)
	}
}

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"shiftdial/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	for _, json := range []bool{true, false} {
		l, err := logging.New("debug", json)
		require.NoError(t, err)
		require.True(t, l.Core().Enabled(zapcore.DebugLevel))

		l, err = logging.New("warn", json)
		require.NoError(t, err)
		require.False(t, l.Core().Enabled(zapcore.InfoLevel))
		require.True(t, l.Core().Enabled(zapcore.ErrorLevel))
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New("loud", true)
	require.Error(t, err)
}

func TestOrNop(t *testing.T) {
	require.NotNil(t, logging.OrNop(nil))
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zap.AtomicLevel
	}{
		{"debug", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"INFO", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{" error ", zap.NewAtomicLevelAt(zap.ErrorLevel)},
		{"", zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"verbose", zap.NewAtomicLevelAt(zap.WarnLevel)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want.Level(), ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestLoggerDefaultsToNop(t *testing.T) {
	require.NotNil(t, Logger)
	Logger.Infow("no-op before Initialize", "k", "v")
}

func TestInitialize(t *testing.T) {
	orig := Logger
	defer func() { Logger = orig; JSONOutput = false }()

	require.NoError(t, Initialize(false, "debug"))
	assert.False(t, JSONOutput)
	assert.True(t, Logger.Desugar().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize(true, "error"))
	assert.True(t, JSONOutput)
	assert.False(t, Logger.Desugar().Core().Enabled(zap.InfoLevel))
}

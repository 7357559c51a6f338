package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	require.NoError(t, InitLogger("debug"))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, InitLogger("error"))
	assert.False(t, Logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestInitLoggerBadLevel(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	assert.Error(t, InitLogger("loud"))
	assert.Same(t, prev, Logger, "a bad level keeps the current logger")
}

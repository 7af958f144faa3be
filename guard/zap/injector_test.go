//go:build unit

package zap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsMissingOTelLibraryName(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: EnvironmentProduction})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OTelLibraryName is required")
}

func TestNewRejectsInvalidEnvironment(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: Environment("banana"), OTelLibraryName: "guard"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestNewAppliesEnvironmentDefaultLevel(t *testing.T) {
	t.Parallel()

	logger, level, err := New(Config{Environment: EnvironmentLocal, OTelLibraryName: "guard"})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	_, level, err = New(Config{Environment: EnvironmentProduction, OTelLibraryName: "guard"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestNewHonorsExplicitLevel(t *testing.T) {
	t.Parallel()

	_, level, err := New(Config{Environment: EnvironmentProduction, Level: "warn", OTelLibraryName: "guard"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level.Level())
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: EnvironmentProduction, Level: "loud", OTelLibraryName: "guard"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}

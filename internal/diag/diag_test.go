package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecordIsANoOpByDefault(t *testing.T) {
	assert.NotPanics(t, func() { Record("op", "message", nil) })
}

func TestSetLoggerNilResetsToNoOp(t *testing.T) {
	SetLogger(nil)
	assert.NotPanics(t, func() { Record("op", "message", errors.New("boom")) })
}

func TestRecordForwardsToInstalledLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core).Sugar())
	defer SetLogger(nil)

	Record("cut", "boolean cut failed", errors.New("empty result"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "cad operation failed", entry.Message)
}

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLevelsSplitAcrossWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	logger, err := NewWithWriters("info", &out, &errOut)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("built page", zap.String("page", "geogrid"))
	logger.Error("load failed")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "INFO")
	assert.Contains(t, out.String(), "geogrid")
	assert.NotContains(t, out.String(), "load failed")
	assert.Contains(t, errOut.String(), "ERROR")
	assert.Contains(t, errOut.String(), "load failed")
}

func TestErrorLevelSilencesInfo(t *testing.T) {
	var out, errOut bytes.Buffer
	logger, err := NewWithWriters("error", &out, &errOut)
	require.NoError(t, err)

	logger.Warn("quiet")
	logger.Error("loud")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "loud")
}

func TestNoneAndInvalidLevels(t *testing.T) {
	logger, err := New("none")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))

	_, err = New("chatty")
	assert.Error(t, err)
}

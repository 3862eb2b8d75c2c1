package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/smarttask/internal/model"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "smarttask.log")

	logger, err := New(model.LogConfig{Level: "info", File: path})
	require.NoError(t, err)

	logger.Info("hello from test")
	logger.Debug("filtered out")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from test"`)
	assert.NotContains(t, string(data), "filtered out")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(model.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestRotatorDefaults(t *testing.T) {
	r := newRotator(model.LogConfig{File: "x.log"})
	assert.Equal(t, defaultMaxSizeMB, r.MaxSize)
	assert.Equal(t, defaultMaxBackups, r.MaxBackups)
	assert.Equal(t, defaultMaxAgeDays, r.MaxAge)

	r = newRotator(model.LogConfig{File: "x.log", MaxSizeMB: 50, MaxBackups: 1, MaxAgeDays: 7})
	assert.Equal(t, 50, r.MaxSize)
	assert.Equal(t, 1, r.MaxBackups)
	assert.Equal(t, 7, r.MaxAge)
}

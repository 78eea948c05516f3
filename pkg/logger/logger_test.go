package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(file, "debug")
	require.NoError(t, err)

	log.Info("booking %d created", 42)
	log.Debug("debug line")
	_ = log.Close()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking 42 created")
	assert.Contains(t, string(data), "debug line")
}

func TestNew_LevelFiltersMessages(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")

	log, err := New(file, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("visible")
	_ = log.Close()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Info("nothing %s", "here")
	log.With("request_id", "x").Error("still nothing")
	assert.NoError(t, log.Close())
}

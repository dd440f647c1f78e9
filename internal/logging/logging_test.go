package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paulo20Lima/esportes/internal/logging"
)

func TestNewSessionID(t *testing.T) {
	a := logging.NewSessionID()
	b := logging.NewSessionID()

	assert.Len(t, a, 26, "ulid string length")
	assert.NotEqual(t, a, b)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "esportes.log")

	logger, closer, err := logging.New(logging.Options{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Info().Str("evento", "teste").Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"evento":"teste"`)
	assert.Contains(t, string(data), `"session"`)
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "esportes.log")

	logger, closer, err := logging.New(logging.Options{Level: "chatty", File: path})
	require.NoError(t, err)
	defer func() { _ = closer.Close() }()

	logger.Debug().Msg("suppressed")
	logger.Info().Msg("kept")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed")
	assert.Contains(t, string(data), "kept")
}

func TestNew_NoWriters(t *testing.T) {
	logger, closer, err := logging.New(logging.Options{Level: "info"})
	require.NoError(t, err)
	defer func() { _ = closer.Close() }()

	// Must not panic; output goes nowhere.
	logger.Info().Msg("into the void")
}

func TestNew_UnwritableFile(t *testing.T) {
	_, _, err := logging.New(logging.Options{
		Level: "info",
		File:  filepath.Join(t.TempDir(), "missing-dir", "esportes.log"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework-status-bot/config"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		"INFO":     zerolog.InfoLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"critical": zerolog.FatalLevel,
	}
	for in, expected := range testCases {
		level, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, level, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")
	require.NoError(t, os.WriteFile(path, []byte("stale line\n"), 0o644))

	logger, closer, err := New(config.LogConfig{Level: "info", File: path, NoColor: true})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("chat", "42").Msg("sent")
	Critical(logger).Msg("token missing")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.NotContains(t, content, "stale line", "file is truncated on start")
	assert.NotContains(t, content, "hidden")
	assert.Contains(t, content, `"chat":"42"`)
	assert.Contains(t, content, `"level":"fatal"`)
}

func TestGormWriter(t *testing.T) {
	var buf bytes.Buffer
	w := GormWriter{Logger: zerolog.New(&buf)}

	w.Printf("%s [%.3fms] %s\n", "store.go:10", 1.5, "SELECT 1")

	assert.Contains(t, buf.String(), `"component":"gorm"`)
	assert.Contains(t, buf.String(), "SELECT 1")
}

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, cfg.Poller.Endpoint)
	assert.Equal(t, 600*time.Second, cfg.Poller.Interval)
	assert.Equal(t, 7*24*time.Hour, cfg.Poller.Lookback)
	assert.Equal(t, 30*time.Second, cfg.Poller.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "main.log", cfg.Log.File)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file::memory:?cache=shared", cfg.Database.DSN)
	assert.Equal(t, float64(1), cfg.Telegram.RatePerSec)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
credentials:
  practicum_token: file-practicum
  telegram_token: file-telegram
  telegram_chat_id: "42"
poller:
  interval_seconds: 60
  start_from_now: true
server:
  enabled: true
  port: 9090
`)
	t.Setenv("TELEGRAM_TOKEN", "env-telegram")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-practicum", cfg.Credentials.PracticumToken)
	assert.Equal(t, "env-telegram", cfg.Credentials.TelegramToken, "environment overrides the file")
	assert.Equal(t, "42", cfg.Credentials.TelegramChatID)
	assert.Equal(t, time.Minute, cfg.Poller.Interval)
	assert.Equal(t, time.Duration(0), cfg.Poller.Lookback)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "poller: [unterminated")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestCheckTokens(t *testing.T) {
	testCases := []struct {
		name        string
		creds       Credentials
		expectedOK  bool
		missingVars []string
	}{
		{
			name:       "all present",
			creds:      Credentials{PracticumToken: "p", TelegramToken: "t", TelegramChatID: "1"},
			expectedOK: true,
		},
		{
			name:        "practicum token missing",
			creds:       Credentials{TelegramToken: "t", TelegramChatID: "1"},
			missingVars: []string{"PRACTICUM_TOKEN"},
		},
		{
			name:        "whitespace chat id counts as missing",
			creds:       Credentials{PracticumToken: "p", TelegramToken: "t", TelegramChatID: "  "},
			missingVars: []string{"TELEGRAM_CHAT_ID"},
		},
		{
			name:        "everything missing",
			creds:       Credentials{},
			missingVars: []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			ok := CheckTokens(&Config{Credentials: tc.creds}, logger)
			assert.Equal(t, tc.expectedOK, ok)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			if len(tc.missingVars) == 0 {
				assert.Empty(t, strings.TrimSpace(buf.String()))
				return
			}
			require.Len(t, lines, len(tc.missingVars), "one critical line per missing variable")
			for i, name := range tc.missingVars {
				assert.Contains(t, lines[i], `"level":"fatal"`)
				assert.Contains(t, lines[i], name)
			}
		})
	}
}

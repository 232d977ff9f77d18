package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// CheckTokens reports whether every required credential is present. Each
// missing one is logged at fatal level; terminating is left to the caller.
func CheckTokens(cfg *Config, logger zerolog.Logger) bool {
	required := []struct {
		env   string
		value string
	}{
		{"PRACTICUM_TOKEN", cfg.Credentials.PracticumToken},
		{"TELEGRAM_TOKEN", cfg.Credentials.TelegramToken},
		{"TELEGRAM_CHAT_ID", cfg.Credentials.TelegramChatID},
	}

	ok := true
	for _, r := range required {
		if strings.TrimSpace(r.value) != "" {
			continue
		}
		logger.WithLevel(zerolog.FatalLevel).
			Str("variable", r.env).
			Msg("required environment variable is missing")
		ok = false
	}
	return ok
}

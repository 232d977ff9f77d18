// Package logging builds the process logger: a human-readable console sink on
// stdout plus a JSON file sink, both driven by zerolog.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"homework-status-bot/config"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// New returns the configured logger and a closer for the file sink.
// The log file is truncated on every start.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: consoleTimeFormat, NoColor: cfg.NoColor},
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file %s: %w", cfg.File, err)
		}
		writers = append(writers, f)
		closer = f
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

// ParseLevel accepts zerolog level names plus "critical", which maps to the
// fatal level.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return zerolog.InfoLevel, nil
	case "critical":
		return zerolog.FatalLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// Critical starts a fatal-level event that, unlike zerolog's Fatal, does not
// exit the process.
func Critical(l zerolog.Logger) *zerolog.Event {
	return l.WithLevel(zerolog.FatalLevel)
}

// GormWriter adapts a zerolog logger to gorm's logger.Writer.
type GormWriter struct {
	Logger zerolog.Logger
}

func (w GormWriter) Printf(format string, args ...interface{}) {
	w.Logger.Debug().Str("component", "gorm").Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// SlowThreshold is the query duration gorm reports as slow.
const SlowThreshold = 200 * time.Millisecond

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

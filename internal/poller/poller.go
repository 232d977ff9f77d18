package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"homework-status-bot/config"
	"homework-status-bot/internal/homework"
	"homework-status-bot/internal/model"
	"homework-status-bot/internal/store"
)

// Notifier delivers a message on a best-effort basis.
type Notifier interface {
	Notify(ctx context.Context, text string) bool
}

// Service runs the polling loop. It owns the cursor and is not safe for
// concurrent use.
type Service struct {
	cfg      *config.Config
	fetcher  Fetcher
	notifier Notifier
	journal  store.Store
	log      zerolog.Logger
	now      func() time.Time

	cursor int64
}

// NewService creates a poller whose cursor starts at now minus the configured lookback.
// journal may be nil.
func NewService(cfg *config.Config, fetcher Fetcher, notifier Notifier, journal store.Store, log zerolog.Logger) *Service {
	s := &Service{
		cfg:      cfg,
		fetcher:  fetcher,
		notifier: notifier,
		journal:  journal,
		log:      log.With().Str("component", "poller").Logger(),
		now:      time.Now,
	}
	s.cursor = s.now().Add(-cfg.Poller.Lookback).Unix()
	return s
}

// Cursor returns the from_date used by the next poll.
func (s *Service) Cursor() int64 {
	return s.cursor
}

// Run polls until ctx is cancelled. A failed iteration is logged and reported
// to the chat; it never stops the loop.
func (s *Service) Run(ctx context.Context) {
	s.log.Info().
		Int64("cursor", s.cursor).
		Dur("interval", s.cfg.Poller.Interval).
		Msg("starting poller")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Int64("cursor", s.cursor).Msg("poller stopped")
			return
		case <-timer.C:
			if err := s.PollOnce(ctx); err != nil {
				if ctx.Err() != nil {
					continue
				}
				s.reportFailure(ctx, err)
			}
			timer.Reset(s.cfg.Poller.Interval)
		}
	}
}

// PollOnce fetches, validates and announces the homeworks changed since the
// cursor, then advances it. The cursor is left untouched on error.
func (s *Service) PollOnce(ctx context.Context) error {
	record := &model.Poll{StartedAt: s.now().UTC(), FromDate: s.cursor}
	err := s.pollOnce(ctx, record)
	if err != nil {
		record.ErrorKind = homework.KindOf(err)
		record.Error = truncate(err.Error(), 1024)
	}
	s.recordPoll(ctx, record)
	return err
}

func (s *Service) pollOnce(ctx context.Context, record *model.Poll) error {
	s.log.Debug().Int64("from_date", s.cursor).Msg("polling homework statuses")

	payload, err := s.fetcher.Fetch(ctx, s.cursor)
	if err != nil {
		return fmt.Errorf("fetch homework statuses: %w", err)
	}

	homeworks, err := homework.CheckResponse(payload)
	if err != nil {
		s.log.Error().Err(err).Msg("invalid api response")
		return err
	}
	record.Homeworks = len(homeworks)
	if len(homeworks) == 0 {
		s.log.Debug().Msg("no homework status changes")
	}

	for _, hw := range homeworks {
		message, err := homework.ParseStatus(hw)
		if err != nil {
			s.log.Error().Err(err).Interface("homework", hw).Msg("cannot describe homework")
			return err
		}
		s.notify(ctx, message)
	}

	currentDate, err := homework.CurrentDate(payload)
	if err != nil {
		s.log.Error().Err(err).Msg("invalid api response")
		return err
	}

	s.cursor = currentDate
	record.NextCursor = currentDate
	return nil
}

func (s *Service) reportFailure(ctx context.Context, err error) {
	message := fmt.Sprintf("Program failure: %v", err)
	event := s.log.Error().Err(err).Str("kind", homework.KindOf(err))
	var sce *homework.StatusCodeError
	if errors.As(err, &sce) {
		event = event.Int("status_code", sce.Code)
	}
	event.Msg("poll failed")
	s.notify(ctx, message)
}

func (s *Service) notify(ctx context.Context, text string) {
	delivered := s.notifier.Notify(ctx, text)
	if s.journal == nil {
		return
	}
	n := &model.Notification{
		SentAt:    s.now().UTC(),
		ChatID:    s.cfg.Credentials.TelegramChatID,
		Text:      text,
		Delivered: delivered,
	}
	if err := s.journal.RecordNotification(context.WithoutCancel(ctx), n); err != nil {
		s.log.Warn().Err(err).Msg("journal write failed")
	}
}

func (s *Service) recordPoll(ctx context.Context, record *model.Poll) {
	if s.journal == nil {
		return
	}
	if err := s.journal.RecordPoll(context.WithoutCancel(ctx), record); err != nil {
		s.log.Warn().Err(err).Msg("journal write failed")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"homework-status-bot/internal/model"
)

const MaxNotificationsPage = 100

// Store defines the journal operations used by the poller and the status API.
type Store interface {
	RecordPoll(ctx context.Context, poll *model.Poll) error
	RecordNotification(ctx context.Context, n *model.Notification) error
	// LastPoll returns nil without error when nothing was polled yet.
	LastPoll(ctx context.Context) (*model.Poll, error)
	RecentNotifications(ctx context.Context, limit int) ([]model.Notification, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) RecordPoll(ctx context.Context, poll *model.Poll) error {
	if err := s.db.WithContext(ctx).Create(poll).Error; err != nil {
		return fmt.Errorf("failed to record poll: %w", err)
	}
	return nil
}

func (s *gormStore) RecordNotification(ctx context.Context, n *model.Notification) error {
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}

func (s *gormStore) LastPoll(ctx context.Context) (*model.Poll, error) {
	var poll model.Poll
	err := s.db.WithContext(ctx).Order("id DESC").Take(&poll).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load last poll: %w", err)
	}
	return &poll, nil
}

func (s *gormStore) RecentNotifications(ctx context.Context, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > MaxNotificationsPage {
		limit = MaxNotificationsPage
	}
	var out []model.Notification
	if err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	return out, nil
}

package model

import "time"

// Notification records a single attempt to deliver a chat message.
type Notification struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	SentAt    time.Time `gorm:"not null;index" json:"sentAt"`
	ChatID    string    `gorm:"size:64;not null" json:"chatId"`
	Text      string    `gorm:"not null" json:"text"`
	Delivered bool      `gorm:"not null" json:"delivered"`
}

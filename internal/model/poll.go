package model

import "time"

// Poll is the journal entry for one iteration of the polling loop.
type Poll struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	StartedAt   time.Time `gorm:"not null;index" json:"startedAt"`
	FromDate    int64     `gorm:"not null" json:"fromDate"`
	NextCursor  int64     `gorm:"not null" json:"nextCursor"` // current_date of the response, 0 when the iteration failed
	Homeworks   int       `gorm:"not null" json:"homeworks"`
	ErrorKind   string    `gorm:"size:32" json:"errorKind,omitempty"`
	Error       string    `gorm:"size:1024" json:"error,omitempty"`
}

// Succeeded reports whether the iteration advanced the cursor.
func (p Poll) Succeeded() bool {
	return p.ErrorKind == ""
}

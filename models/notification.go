package models

import (
	"time"
)

// Notification is written for both task-assignment alerts and overdue alerts.
// The overdue sweep dedupes on an existing message containing "overdue" for
// the same task/user pair.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TaskID    uint      `gorm:"not null;index" json:"task_id"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

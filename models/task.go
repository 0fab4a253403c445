package models

import (
	"time"
)

// Task priority values accepted by the API.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// StatusCompleted is the canonical terminal status. The task creation gate,
// the productivity stats and the overdue sweep all compare against it.
const (
	StatusNotStarted = "not started"
	StatusCompleted  = "completed"
)

// RecurrenceNone is the default recurrence cadence.
const RecurrenceNone = "none"

type Task struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	DueDate       string    `json:"due_date"`
	Priority      string    `gorm:"default:medium" json:"priority"`
	EstimatedTime int       `json:"estimated_time"`
	Status        string    `gorm:"index" json:"status"`
	Attachment    string    `json:"attachment"`
	Recurrence    string    `gorm:"default:none" json:"recurrence"`
	ProjectID     uint      `gorm:"index" json:"project_id,omitempty"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TaskSummary is the lightweight shape embedded in aggregation responses.
type TaskSummary struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DueDate       string `json:"due_date"`
	Priority      string `json:"priority"`
	Status        string `json:"status,omitempty"`
	EstimatedTime int    `json:"estimated_time"`
	Recurrence    string `json:"recurrence"`
}

// Summary strips a task down to the fields exposed by the stats endpoints.
func (t Task) Summary() TaskSummary {
	return TaskSummary{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		DueDate:       t.DueDate,
		Priority:      t.Priority,
		Status:        t.Status,
		EstimatedTime: t.EstimatedTime,
		Recurrence:    t.Recurrence,
	}
}

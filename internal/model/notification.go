package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType distinguishes the two reminder kinds.
type NotificationType string

const (
	// CustomReminder fires on the task's own reminder date (PRO plans).
	CustomReminder NotificationType = "CUSTOM_REMINDER"
	// DueDateReminder fires two days ahead of the due date (FREE plans).
	DueDateReminder NotificationType = "DUE_DATE_REMINDER"
)

// EmailNotification is an append-only ledger row recording that a
// reminder of a given type was sent for a task. The unique index on
// (task_id, type) is the deduplication authority; rows are never
// updated or deleted.
type EmailNotification struct {
	ID           string           `gorm:"primaryKey;size:36"`
	TaskID       string           `gorm:"size:36;index:idx_task_notification_type,unique"`
	Type         NotificationType `gorm:"index:idx_task_notification_type,unique"`
	ScheduledFor time.Time
	CreatedAt    time.Time
}

func (n *EmailNotification) BeforeCreate(*gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents a single item on a user's list.
type Task struct {
	ID            string  `gorm:"primaryKey;size:36"`
	UserID        string  `gorm:"index;size:36"`
	CategoryID    *string `gorm:"index;size:36"`
	Title         string
	Description   string
	DueDate       time.Time
	ReminderDate  *time.Time
	IsCompleted   bool `gorm:"default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	User          User                `gorm:"foreignKey:UserID"`
	Category      *Category           `gorm:"foreignKey:CategoryID"`
	Labels        []Label             `gorm:"many2many:task_labels"`
	Notifications []EmailNotification `gorm:"foreignKey:TaskID"`
}

func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// HasNotification reports whether a reminder of the given type was
// already logged for this task.
func (t *Task) HasNotification(kind NotificationType) bool {
	for _, n := range t.Notifications {
		if n.Type == kind {
			return true
		}
	}
	return false
}

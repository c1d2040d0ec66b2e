package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Label is a freeform tag attached to tasks.
type Label struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;index:idx_user_label_name,unique"`
	Name      string `gorm:"index:idx_user_label_name,unique"`
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task `gorm:"many2many:task_labels"`
}

func (l *Label) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

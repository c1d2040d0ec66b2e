package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups tasks by area (work, health, study, etc.).
type Category struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"size:36;index:idx_user_category_name,unique"`
	Name        string `gorm:"index:idx_user_category_name,unique"`
	Color       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Tasks       []Task `gorm:"foreignKey:CategoryID"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

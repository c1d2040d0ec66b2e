package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanName identifies a subscription tier.
type PlanName string

const (
	PlanFree PlanName = "FREE"
	PlanPro  PlanName = "PRO"
)

// UnlimitedTasks is the MaxTasks sentinel for plans without a quota.
const UnlimitedTasks = -1

// SubscriptionStatus is the lifecycle state of a user subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// SubscriptionPlan is static reference data describing a tier.
type SubscriptionPlan struct {
	ID         string   `gorm:"primaryKey;size:36"`
	Name       PlanName `gorm:"uniqueIndex"`
	PriceCents int
	MaxTasks   int
	IsActive   bool `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p *SubscriptionPlan) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// UserSubscription binds a user to a plan for a billing period.
// At most one active, unexpired subscription may exist per user;
// plan changes cancel competitors before applying the new one.
type UserSubscription struct {
	ID                 string             `gorm:"primaryKey;size:36"`
	UserID             string             `gorm:"index;size:36"`
	PlanID             string             `gorm:"size:36"`
	Status             SubscriptionStatus `gorm:"index"`
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Plan               SubscriptionPlan `gorm:"foreignKey:PlanID"`
}

func (s *UserSubscription) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

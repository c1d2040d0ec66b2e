package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account that owns tasks and a subscription.
type User struct {
	ID            string `gorm:"primaryKey;size:36"`
	Email         string `gorm:"uniqueIndex"`
	Name          string
	APIToken      string `gorm:"uniqueIndex"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Tasks         []Task             `gorm:"foreignKey:UserID"`
	Subscriptions []UserSubscription `gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// ActiveSubscription returns the user's active, unexpired subscription,
// preferring the higher-priced plan when several overlap.
func (u *User) ActiveSubscription(now time.Time) *UserSubscription {
	var best *UserSubscription
	for i := range u.Subscriptions {
		sub := &u.Subscriptions[i]
		if sub.Status != SubscriptionActive || !sub.CurrentPeriodEnd.After(now) {
			continue
		}
		if best == nil ||
			sub.Plan.PriceCents > best.Plan.PriceCents ||
			(sub.Plan.PriceCents == best.Plan.PriceCents && sub.CurrentPeriodEnd.After(best.CurrentPeriodEnd)) {
			best = sub
		}
	}
	return best
}

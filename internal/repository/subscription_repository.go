package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"task-reminder/internal/model"
)

// SubscriptionRepository manages plans and user subscriptions.
type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// FindPlanByName looks up a tier by its name.
func (r *SubscriptionRepository) FindPlanByName(ctx context.Context, name model.PlanName) (*model.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListActivePlans returns the tiers offered for signup.
func (r *SubscriptionRepository) ListActivePlans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	var plans []model.SubscriptionPlan
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("price_cents ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// ActiveForUser returns the user's active, unexpired subscription with
// its plan, preferring the higher-priced plan when several overlap.
func (r *SubscriptionRepository) ActiveForUser(ctx context.Context, userID string, now time.Time) (*model.UserSubscription, error) {
	var subs []model.UserSubscription
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND current_period_end > ?", userID, model.SubscriptionActive, now).
		Preload("Plan").
		Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("find active subscription: %w", err)
	}
	if len(subs) == 0 {
		return nil, nil
	}
	best := &subs[0]
	for i := 1; i < len(subs); i++ {
		sub := &subs[i]
		if sub.Plan.PriceCents > best.Plan.PriceCents ||
			(sub.Plan.PriceCents == best.Plan.PriceCents && sub.CurrentPeriodEnd.After(best.CurrentPeriodEnd)) {
			best = sub
		}
	}
	return best, nil
}

// Apply activates a subscription on the given plan for one year,
// cancelling any competing active subscriptions inside the same
// transaction so at most one stays active per user.
func (r *SubscriptionRepository) Apply(ctx context.Context, userID, planID string, now time.Time) (*model.UserSubscription, error) {
	var result model.UserSubscription
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cancelled := map[string]interface{}{
			"status":       model.SubscriptionCancelled,
			"cancelled_at": now,
		}
		if err := tx.Model(&model.UserSubscription{}).
			Where("user_id = ? AND status = ? AND plan_id <> ?", userID, model.SubscriptionActive, planID).
			Updates(cancelled).Error; err != nil {
			return fmt.Errorf("cancel competing subscriptions: %w", err)
		}

		var existing model.UserSubscription
		err := tx.Where("user_id = ? AND status = ? AND plan_id = ? AND current_period_end > ?",
			userID, model.SubscriptionActive, planID, now).First(&existing).Error
		switch {
		case err == nil:
			existing.CurrentPeriodStart = now
			existing.CurrentPeriodEnd = now.AddDate(1, 0, 0)
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("extend subscription: %w", err)
			}
			result = existing
			return nil
		case err == gorm.ErrRecordNotFound:
			created := model.UserSubscription{
				UserID:             userID,
				PlanID:             planID,
				Status:             model.SubscriptionActive,
				CurrentPeriodStart: now,
				CurrentPeriodEnd:   now.AddDate(1, 0, 0),
			}
			if err := tx.Create(&created).Error; err != nil {
				return fmt.Errorf("create subscription: %w", err)
			}
			result = created
			return nil
		default:
			return fmt.Errorf("find subscription: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Preload("Plan").First(&result, "id = ?", result.ID).Error; err != nil {
		return nil, fmt.Errorf("reload subscription: %w", err)
	}
	return &result, nil
}

// Cancel marks the subscription cancelled and stamps the time.
func (r *SubscriptionRepository) Cancel(ctx context.Context, sub *model.UserSubscription, now time.Time) error {
	sub.Status = model.SubscriptionCancelled
	sub.CancelledAt = &now
	if err := r.db.WithContext(ctx).Save(sub).Error; err != nil {
		return fmt.Errorf("cancel subscription: %w", err)
	}
	return nil
}

// History lists the user's subscriptions, newest first.
func (r *SubscriptionRepository) History(ctx context.Context, userID string) ([]model.UserSubscription, error) {
	var subs []model.UserSubscription
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Plan").
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

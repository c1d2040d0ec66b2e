package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-reminder/internal/model"
	"task-reminder/internal/repository"
)

// SubscriptionService manages plan membership. Billing itself lives
// outside this service; state changes are pushed in through Subscribe
// and Cancel, and the current plan can be queried.
type SubscriptionService struct {
	subsRepo *repository.SubscriptionRepository
	now      func() time.Time
}

func NewSubscriptionService(subsRepo *repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{
		subsRepo: subsRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Plans lists the tiers offered for signup.
func (s *SubscriptionService) Plans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	return s.subsRepo.ListActivePlans(ctx)
}

// Current returns the user's active subscription, or nil without error
// when there is none.
func (s *SubscriptionService) Current(ctx context.Context, userID string) (*model.UserSubscription, error) {
	return s.subsRepo.ActiveForUser(ctx, userID, s.now())
}

// Subscribe puts the user on the named plan for a one-year period. Any
// competing active subscription is cancelled in the same transaction,
// keeping at most one active subscription per user.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID string, planName model.PlanName) (*model.UserSubscription, error) {
	if planName != model.PlanFree && planName != model.PlanPro {
		return nil, ErrInvalidPlanName
	}
	plan, err := s.subsRepo.FindPlanByName(ctx, planName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return s.subsRepo.Apply(ctx, userID, plan.ID, s.now())
}

// Cancel marks the user's active subscription cancelled.
func (s *SubscriptionService) Cancel(ctx context.Context, userID string) (*model.UserSubscription, error) {
	sub, err := s.subsRepo.ActiveForUser(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoActiveSubscription
	}
	if err := s.subsRepo.Cancel(ctx, sub, s.now()); err != nil {
		return nil, err
	}
	return sub, nil
}

// History lists the user's subscriptions, newest first.
func (s *SubscriptionService) History(ctx context.Context, userID string) ([]model.UserSubscription, error) {
	return s.subsRepo.History(ctx, userID)
}

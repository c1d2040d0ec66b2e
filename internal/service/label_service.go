package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"task-reminder/internal/model"
	"task-reminder/internal/plan"
	"task-reminder/internal/repository"
)

const defaultLabelColor = "#6B7280"

// LabelService provides CRUD around labels, gated the same way as
// categories.
type LabelService struct {
	repo     *repository.LabelRepository
	subsRepo *repository.SubscriptionRepository
	now      func() time.Time
}

func NewLabelService(repo *repository.LabelRepository, subsRepo *repository.SubscriptionRepository) *LabelService {
	return &LabelService{
		repo:     repo,
		subsRepo: subsRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *LabelService) List(ctx context.Context, userID string) ([]model.Label, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *LabelService) Create(ctx context.Context, userID, name, color string) (*model.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	sub, err := s.subsRepo.ActiveForUser(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoSubscription
	}
	if !plan.EntitlementsFor(sub.Plan.Name).AllowCategoriesAndLabels {
		return nil, ErrProFeature
	}

	if _, err := s.repo.FindByName(ctx, userID, name); err == nil {
		return nil, ErrLabelExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if color == "" {
		color = defaultLabelColor
	}
	label := model.Label{UserID: userID, Name: name, Color: color}
	if err := s.repo.Create(ctx, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

func (s *LabelService) Delete(ctx context.Context, userID, id string) error {
	labels, err := s.repo.FindByIDs(ctx, userID, []string{id})
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return ErrLabelNotFound
	}
	return s.repo.Delete(ctx, userID, id)
}

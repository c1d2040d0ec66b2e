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

const defaultCategoryColor = "#3B82F6"

// CategoryService provides CRUD around categories. Creating one is
// gated on the categories-and-labels entitlement; existing rows stay
// readable after a downgrade.
type CategoryService struct {
	repo     *repository.CategoryRepository
	subsRepo *repository.SubscriptionRepository
	now      func() time.Time
}

func NewCategoryService(repo *repository.CategoryRepository, subsRepo *repository.SubscriptionRepository) *CategoryService {
	return &CategoryService{
		repo:     repo,
		subsRepo: subsRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *CategoryService) List(ctx context.Context, userID string) ([]model.Category, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *CategoryService) Create(ctx context.Context, userID, name, color, description string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if err := s.requireEntitlement(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByName(ctx, userID, name); err == nil {
		return nil, ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if color == "" {
		color = defaultCategoryColor
	}
	category := model.Category{
		UserID:      userID,
		Name:        name,
		Color:       color,
		Description: description,
	}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.FindByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, userID, id)
}

func (s *CategoryService) requireEntitlement(ctx context.Context, userID string) error {
	sub, err := s.subsRepo.ActiveForUser(ctx, userID, s.now())
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrNoSubscription
	}
	if !plan.EntitlementsFor(sub.Plan.Name).AllowCategoriesAndLabels {
		return ErrProFeature
	}
	return nil
}

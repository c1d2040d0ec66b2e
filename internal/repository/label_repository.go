package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-reminder/internal/model"
)

// LabelRepository manages task labels.
type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) Create(ctx context.Context, label *model.Label) error {
	if err := r.db.WithContext(ctx).Create(label).Error; err != nil {
		return fmt.Errorf("create label: %w", err)
	}
	return nil
}

func (r *LabelRepository) ListByUser(ctx context.Context, userID string) ([]model.Label, error) {
	var labels []model.Label
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *LabelRepository) FindByName(ctx context.Context, userID, name string) (*model.Label, error) {
	var label model.Label
	if err := r.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).First(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// FindByIDs returns the user's labels among the given ids. A shorter
// result than ids means some id was missing or foreign.
func (r *LabelRepository) FindByIDs(ctx context.Context, userID string, ids []string) ([]model.Label, error) {
	var labels []model.Label
	if len(ids) == 0 {
		return labels, nil
	}
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id IN ?", userID, ids).Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *LabelRepository) Delete(ctx context.Context, userID, id string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Label{}).Error; err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	return nil
}

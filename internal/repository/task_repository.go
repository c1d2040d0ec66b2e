package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"task-reminder/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Category").
		Preload("Labels").
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, taskID).
		Preload("Labels").
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// CountByUser returns the user's total task count for quota checks.
func (r *TaskRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// Save persists column changes on an existing task.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// ReplaceLabels swaps the task's label set for the given one.
func (r *TaskRepository) ReplaceLabels(ctx context.Context, task *model.Task, labels []model.Label) error {
	if err := r.db.WithContext(ctx).Model(task).Association("Labels").Replace(labels); err != nil {
		return fmt.Errorf("replace task labels: %w", err)
	}
	return nil
}

func (r *TaskRepository) MarkCompleted(ctx context.Context, task *model.Task) error {
	task.IsCompleted = true
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// FindTasksNeedingReminderCheck loads incomplete tasks whose reminder or
// due date falls inside today's candidate windows, together with the
// owner's subscriptions and any existing notification ledger rows so the
// scheduler can classify them without further queries.
func (r *TaskRepository) FindTasksNeedingReminderCheck(ctx context.Context, now time.Time) ([]model.Task, error) {
	todayUTC := now.UTC().Truncate(24 * time.Hour)
	var tasks []model.Task
	window := r.db.
		Where("reminder_date >= ? AND reminder_date < ?", todayUTC, todayUTC.Add(24*time.Hour)).
		Or("due_date >= ? AND due_date < ?", todayUTC.Add(48*time.Hour), todayUTC.Add(72*time.Hour))
	if err := r.db.WithContext(ctx).
		Where("is_completed = ?", false).
		Where(window).
		Preload("User").
		Preload("User.Subscriptions").
		Preload("User.Subscriptions.Plan").
		Preload("Notifications").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("find reminder candidates: %w", err)
	}
	return tasks, nil
}

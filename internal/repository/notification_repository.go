package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"task-reminder/internal/model"
)

// NotificationRepository is the append-only reminder ledger. Rows are
// never updated or deleted; the unique (task_id, type) index owns the
// deduplication invariant.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// HasSent reports whether a reminder of the given type was already
// logged for the task.
func (r *NotificationRepository) HasSent(ctx context.Context, taskID string, kind model.NotificationType) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.EmailNotification{}).
		Where("task_id = ? AND type = ?", taskID, kind).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check notification: %w", err)
	}
	return count > 0, nil
}

// RecordSent appends a ledger row. Losing a race to a concurrent writer
// for the same (task, type) pair is treated as already-sent, not an
// error; the store's uniqueness constraint is the authority.
func (r *NotificationRepository) RecordSent(ctx context.Context, taskID string, kind model.NotificationType, scheduledFor time.Time) error {
	row := model.EmailNotification{
		TaskID:       taskID,
		Type:         kind,
		ScheduledFor: scheduledFor,
	}
	err := r.db.WithContext(ctx).Create(&row).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return nil
	}
	return fmt.Errorf("record notification: %w", err)
}

// ListByTask returns the ledger rows for a task, oldest first.
func (r *NotificationRepository) ListByTask(ctx context.Context, taskID string) ([]model.EmailNotification, error) {
	var rows []model.EmailNotification
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

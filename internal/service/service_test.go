package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"task-reminder/internal/model"
	"task-reminder/internal/repository"
)

// newTestDB opens an in-memory store with migrations and seeded plans.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{Email: email, Name: "Test User", APIToken: "token-" + email}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func subscribe(t *testing.T, db *gorm.DB, userID string, planName model.PlanName, now time.Time) *model.UserSubscription {
	t.Helper()
	var plan model.SubscriptionPlan
	require.NoError(t, db.Where("name = ?", planName).First(&plan).Error)
	sub := model.UserSubscription{
		UserID:             userID,
		PlanID:             plan.ID,
		Status:             model.SubscriptionActive,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   now.AddDate(1, 0, 0),
	}
	require.NoError(t, db.Create(&sub).Error)
	sub.Plan = plan
	return &sub
}

func cancelSubscriptions(t *testing.T, db *gorm.DB, userID string, now time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&model.UserSubscription{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"status": model.SubscriptionCancelled, "cancelled_at": now}).Error)
}

func newGateForTest(db *gorm.DB, now time.Time) *TaskService {
	svc := NewTaskService(
		repository.NewTaskRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewLabelRepository(db),
		repository.NewSubscriptionRepository(db),
	)
	svc.now = func() time.Time { return now }
	return svc
}

func mustCreateTask(t *testing.T, svc *TaskService, userID string, input TaskInput) *model.Task {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), userID, input)
	require.NoError(t, err)
	return task
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"task-reminder/internal/model"
)

func newLedgerForTest(t *testing.T) (*NotificationRepository, *gorm.DB) {
	t.Helper()
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewNotificationRepository(db), db
}

func TestRecordSent_DuplicateIsIgnored(t *testing.T) {
	ledger, _ := newLedgerForTest(t)
	ctx := context.Background()
	scheduledFor := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, ledger.RecordSent(ctx, "task-1", model.DueDateReminder, scheduledFor))
	// Losing the uniqueness race must read as already-sent.
	require.NoError(t, ledger.RecordSent(ctx, "task-1", model.DueDateReminder, scheduledFor))

	rows, err := ledger.ListByTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	sent, err := ledger.HasSent(ctx, "task-1", model.DueDateReminder)
	require.NoError(t, err)
	assert.True(t, sent)
}

func TestRecordSent_TypesAreIndependent(t *testing.T) {
	ledger, _ := newLedgerForTest(t)
	ctx := context.Background()
	scheduledFor := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, ledger.RecordSent(ctx, "task-1", model.DueDateReminder, scheduledFor))
	require.NoError(t, ledger.RecordSent(ctx, "task-1", model.CustomReminder, scheduledFor))

	rows, err := ledger.ListByTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	sent, err := ledger.HasSent(ctx, "task-2", model.CustomReminder)
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestSeedPlans_Idempotent(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, seedPlans(db))

	var count int64
	require.NoError(t, db.Model(&model.SubscriptionPlan{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var free model.SubscriptionPlan
	require.NoError(t, db.Where("name = ?", model.PlanFree).First(&free).Error)
	assert.Equal(t, 10, free.MaxTasks)

	var pro model.SubscriptionPlan
	require.NoError(t, db.Where("name = ?", model.PlanPro).First(&pro).Error)
	assert.Equal(t, model.UnlimitedTasks, pro.MaxTasks)
	assert.Equal(t, 500, pro.PriceCents)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-reminder/internal/model"
	"task-reminder/internal/repository"
)

func userOnPlan(name model.PlanName, now time.Time) model.User {
	price := 0
	if name == model.PlanPro {
		price = 500
	}
	return model.User{
		ID:    "user-" + string(name),
		Email: string(name) + "@example.com",
		Name:  "Planner",
		Subscriptions: []model.UserSubscription{{
			Status:           model.SubscriptionActive,
			CurrentPeriodEnd: now.AddDate(1, 0, 0),
			Plan:             model.SubscriptionPlan{Name: name, PriceCents: price},
		}},
	}
}

func TestPlan_FreeTwoDayRule(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := NewReminderService(nil, nil)
	user := userOnPlan(model.PlanFree, now)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"due exactly two days out", time.Date(2025, 6, 3, 15, 4, 0, 0, time.UTC), 1},
		{"due at start of window", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), 1},
		{"due three days out", time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), 0},
		{"due tomorrow", time.Date(2025, 6, 2, 23, 59, 59, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := model.Task{ID: "t1", Title: "pay rent", DueDate: tt.due, User: user}
			instructions := svc.Plan(now, []model.Task{task})
			require.Len(t, instructions, tt.want)
			if tt.want == 1 {
				assert.Equal(t, model.DueDateReminder, instructions[0].Type)
				assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), instructions[0].ScheduledFor)
				assert.False(t, instructions[0].IsPro)
			}
		})
	}
}

func TestPlan_ProSameDayRule(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := NewReminderService(nil, nil)
	user := userOnPlan(model.PlanPro, now)

	tests := []struct {
		name     string
		reminder time.Time
		want     int
	}{
		{"reminder at midnight", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1},
		{"reminder late in the day", time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC), 1},
		{"reminder tomorrow", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), 0},
		{"reminder yesterday", time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminder := tt.reminder
			task := model.Task{
				ID:           "t1",
				Title:        "ship release",
				DueDate:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				ReminderDate: &reminder,
				User:         user,
			}
			instructions := svc.Plan(now, []model.Task{task})
			require.Len(t, instructions, tt.want)
			if tt.want == 1 {
				assert.Equal(t, model.CustomReminder, instructions[0].Type)
				assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), instructions[0].ScheduledFor)
				assert.True(t, instructions[0].IsPro)
			}
		})
	}
}

func TestPlan_SkipsCompletedAndLedgered(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := NewReminderService(nil, nil)
	user := userOnPlan(model.PlanFree, now)
	due := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)

	completed := model.Task{ID: "done", DueDate: due, IsCompleted: true, User: user}
	assert.Empty(t, svc.Plan(now, []model.Task{completed}))

	sent := model.Task{
		ID: "sent", DueDate: due, User: user,
		Notifications: []model.EmailNotification{{TaskID: "sent", Type: model.DueDateReminder}},
	}
	assert.Empty(t, svc.Plan(now, []model.Task{sent}))
}

func TestPlan_NoActiveSubscription(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := NewReminderService(nil, nil)

	expired := userOnPlan(model.PlanFree, now)
	expired.Subscriptions[0].CurrentPeriodEnd = now.AddDate(0, 0, -1)

	task := model.Task{ID: "t1", DueDate: time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC), User: expired}
	assert.Empty(t, svc.Plan(now, []model.Task{task}))
}

// Running the scheduler twice against the same state must not produce a
// second send: the ledger row written on the first pass suppresses it.
func TestRun_SecondPassSendsNothing(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	user := createUser(t, db, "run@example.com")
	subscribe(t, db, user.ID, model.PlanFree, now)
	task := model.Task{
		UserID:  user.ID,
		Title:   "water plants",
		DueDate: time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&task).Error)

	transport := &fakeTransport{}
	ledger := repository.NewNotificationRepository(db)
	dispatcher := NewDispatcher(transport, ledger, "http://app.test")
	svc := NewReminderService(repository.NewTaskRepository(db), dispatcher)

	processed, err := svc.Run(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Equal(t, 1, transport.count())

	processed, err = svc.Run(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
	assert.Equal(t, 1, transport.count())

	rows, err := ledger.ListByTask(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.DueDateReminder, rows[0].Type)
	assert.True(t, rows[0].ScheduledFor.Equal(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)))
}

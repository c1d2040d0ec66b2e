package httpapi

import (
	"context"
	"errors"
	"time"

	"task-reminder/internal/model"
	"task-reminder/internal/service"
)

var errNotStubbed = errors.New("not stubbed")

// mockUserResolver implements UserResolver for handler tests.
type mockUserResolver struct {
	FindByAPITokenFunc func(ctx context.Context, token string) (*model.User, error)
}

func (m *mockUserResolver) FindByAPIToken(ctx context.Context, token string) (*model.User, error) {
	if m.FindByAPITokenFunc != nil {
		return m.FindByAPITokenFunc(ctx, token)
	}
	return nil, errNotStubbed
}

// mockReminderRunner implements ReminderRunner for cron endpoint tests.
type mockReminderRunner struct {
	RunFunc func(ctx context.Context, now time.Time) (int, error)
}

func (m *mockReminderRunner) Run(ctx context.Context, now time.Time) (int, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, now)
	}
	return 0, errNotStubbed
}

// mockTaskService implements TaskService with stubbable methods.
type mockTaskService struct {
	CreateTaskFunc   func(ctx context.Context, userID string, input service.TaskInput) (*model.Task, error)
	UpdateTaskFunc   func(ctx context.Context, userID, taskID string, input service.TaskInput) (*model.Task, error)
	ListTasksFunc    func(ctx context.Context, userID string) ([]model.Task, error)
	GetTaskFunc      func(ctx context.Context, userID, taskID string) (*model.Task, error)
	CompleteTaskFunc func(ctx context.Context, userID, taskID string) (*model.Task, error)
	DeleteTaskFunc   func(ctx context.Context, userID, taskID string) error
	SummaryFunc      func(ctx context.Context, userID string) (*service.TaskSummary, error)
}

func (m *mockTaskService) CreateTask(ctx context.Context, userID string, input service.TaskInput) (*model.Task, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, userID, input)
	}
	return nil, errNotStubbed
}

func (m *mockTaskService) UpdateTask(ctx context.Context, userID, taskID string, input service.TaskInput) (*model.Task, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, userID, taskID, input)
	}
	return nil, errNotStubbed
}

func (m *mockTaskService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	if m.ListTasksFunc != nil {
		return m.ListTasksFunc(ctx, userID)
	}
	return nil, errNotStubbed
}

func (m *mockTaskService) GetTask(ctx context.Context, userID, taskID string) (*model.Task, error) {
	if m.GetTaskFunc != nil {
		return m.GetTaskFunc(ctx, userID, taskID)
	}
	return nil, errNotStubbed
}

func (m *mockTaskService) CompleteTask(ctx context.Context, userID, taskID string) (*model.Task, error) {
	if m.CompleteTaskFunc != nil {
		return m.CompleteTaskFunc(ctx, userID, taskID)
	}
	return nil, errNotStubbed
}

func (m *mockTaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, userID, taskID)
	}
	return errNotStubbed
}

func (m *mockTaskService) Summary(ctx context.Context, userID string) (*service.TaskSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, userID)
	}
	return nil, errNotStubbed
}

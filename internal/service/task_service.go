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

// TaskInput represents data submitted to create or update a task.
type TaskInput struct {
	Title        string
	Description  string
	DueDate      time.Time
	ReminderDate *time.Time
	CategoryID   *string
	LabelIDs     []string
}

// TaskSummary aggregates a user's task counts.
type TaskSummary struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
	Overdue   int64 `json:"overdue"`
}

// TaskService authorizes and executes task mutations. It is the gate
// between client input and the repository: quota breaches fail hard,
// while plan-restricted fields (reminder date, category, labels) are
// silently stripped rather than failing the whole request.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
	labelRepo    *repository.LabelRepository
	subsRepo     *repository.SubscriptionRepository
	now          func() time.Time
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	categoryRepo *repository.CategoryRepository,
	labelRepo *repository.LabelRepository,
	subsRepo *repository.SubscriptionRepository,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		labelRepo:    labelRepo,
		subsRepo:     subsRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateTask validates input, enforces the caller's entitlements and
// persists the task. Requires an active subscription; quota is checked
// before any write.
func (s *TaskService) CreateTask(ctx context.Context, userID string, input TaskInput) (*model.Task, error) {
	sub, err := s.subsRepo.ActiveForUser(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoSubscription
	}
	ent := plan.EntitlementsFor(sub.Plan.Name)

	if !ent.Unlimited() {
		count, err := s.taskRepo.CountByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if count >= int64(ent.MaxTasks) {
			return nil, ErrTaskLimitReached
		}
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	input = stripDisallowed(input, ent)

	labels, err := s.resolveAssociations(ctx, userID, &input)
	if err != nil {
		return nil, err
	}

	task := model.Task{
		UserID:       userID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		DueDate:      input.DueDate,
		ReminderDate: input.ReminderDate,
		CategoryID:   input.CategoryID,
		Labels:       labels,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask re-resolves the owner's current plan, which may have
// changed since the task was created, and re-applies the stripping
// rule live: an edit by a since-downgraded user silently drops
// PRO-only fields.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, input TaskInput) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	ent := plan.None
	sub, err := s.subsRepo.ActiveForUser(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}
	if sub != nil {
		ent = plan.EntitlementsFor(sub.Plan.Name)
	}
	input = stripDisallowed(input, ent)

	labels, err := s.resolveAssociations(ctx, userID, &input)
	if err != nil {
		return nil, err
	}

	task.Title = strings.TrimSpace(input.Title)
	task.Description = strings.TrimSpace(input.Description)
	task.DueDate = input.DueDate
	task.ReminderDate = input.ReminderDate
	task.CategoryID = input.CategoryID
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	if err := s.taskRepo.ReplaceLabels(ctx, task, labels); err != nil {
		return nil, err
	}
	task.Labels = labels
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID string) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// CompleteTask marks a task as done after an ownership check.
func (s *TaskService) CompleteTask(ctx context.Context, userID, taskID string) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if err := s.taskRepo.MarkCompleted(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if _, err := s.taskRepo.FindByID(ctx, userID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return s.taskRepo.Delete(ctx, userID, taskID)
}

// Summary returns the user's task counts.
func (s *TaskService) Summary(ctx context.Context, userID string) (*TaskSummary, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	summary := TaskSummary{Total: int64(len(tasks))}
	for _, task := range tasks {
		if task.IsCompleted {
			summary.Completed++
			continue
		}
		summary.Pending++
		if task.DueDate.Before(now) {
			summary.Overdue++
		}
	}
	return &summary, nil
}

// validateInput rejects structural problems before any write. The
// equal-dates case gets its own error so clients can distinguish it
// from reminder-after-due.
func validateInput(input TaskInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrTitleRequired
	}
	if input.DueDate.IsZero() {
		return ErrDueDateRequired
	}
	if input.ReminderDate != nil {
		switch {
		case input.ReminderDate.Equal(input.DueDate):
			return ErrReminderEqualsDue
		case input.ReminderDate.After(input.DueDate):
			return ErrReminderAfterDue
		}
	}
	return nil
}

// stripDisallowed force-nulls fields the plan does not permit,
// regardless of client-submitted values. Quota protects the business
// model and fails hard; feature fields are stripped softly so the rest
// of the request still succeeds.
func stripDisallowed(input TaskInput, ent plan.Entitlements) TaskInput {
	if !ent.AllowCustomReminder {
		input.ReminderDate = nil
	}
	if !ent.AllowCategoriesAndLabels {
		input.CategoryID = nil
		input.LabelIDs = nil
	}
	return input
}

// resolveAssociations verifies that any surviving category and labels
// belong to the user and loads the label rows.
func (s *TaskService) resolveAssociations(ctx context.Context, userID string, input *TaskInput) ([]model.Label, error) {
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, userID, *input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCategory
			}
			return nil, err
		}
	}
	if len(input.LabelIDs) == 0 {
		return nil, nil
	}
	labels, err := s.labelRepo.FindByIDs(ctx, userID, input.LabelIDs)
	if err != nil {
		return nil, err
	}
	if len(labels) != len(input.LabelIDs) {
		return nil, ErrInvalidLabels
	}
	return labels, nil
}

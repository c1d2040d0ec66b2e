package service

import (
	"context"
	"log"
	"time"

	"task-reminder/internal/model"
	"task-reminder/internal/plan"
	"task-reminder/internal/repository"
)

// reminderHourUTC is when reminder emails are stamped as scheduled.
const reminderHourUTC = 9

// Instruction tells the dispatcher to send one reminder.
type Instruction struct {
	Task         model.Task
	Type         model.NotificationType
	ScheduledFor time.Time
	IsPro        bool
}

// reminderDispatcher sends planned reminders; satisfied by Dispatcher.
type reminderDispatcher interface {
	Dispatch(ctx context.Context, instructions []Instruction)
}

// ReminderService decides, for every candidate task, whether a reminder
// must go out on this run. Planning is a pure function of the injected
// clock and the preloaded task rows, so runs are deterministic and
// repeatable.
type ReminderService struct {
	taskRepo   *repository.TaskRepository
	dispatcher reminderDispatcher
}

func NewReminderService(taskRepo *repository.TaskRepository, dispatcher reminderDispatcher) *ReminderService {
	return &ReminderService{taskRepo: taskRepo, dispatcher: dispatcher}
}

// Run executes one scheduling pass: load candidates, plan, dispatch.
// A store failure aborts the whole run; the next scheduled invocation
// retries everything. Returns the number of reminders dispatched.
func (s *ReminderService) Run(ctx context.Context, now time.Time) (int, error) {
	reminderRuns.Inc()

	tasks, err := s.taskRepo.FindTasksNeedingReminderCheck(ctx, now)
	if err != nil {
		return 0, err
	}

	instructions := s.Plan(now, tasks)
	if len(instructions) > 0 {
		s.dispatcher.Dispatch(ctx, instructions)
	}

	log.Printf("[info] reminder run: %d candidates, %d to send", len(tasks), len(instructions))
	return len(instructions), nil
}

// Plan classifies tasks into send instructions.
//
// PRO plans get a CUSTOM_REMINDER on the day of the task's own reminder
// date. FREE plans get a DUE_DATE_REMINDER when the due date is exactly
// two calendar days out. Both are stamped for 09:00 UTC today. Tasks
// whose ledger already holds that notification type are skipped; this
// is the sole idempotency guard, so re-running against the same state
// yields nothing new.
func (s *ReminderService) Plan(now time.Time, tasks []model.Task) []Instruction {
	todayUTC := now.UTC().Truncate(24 * time.Hour)
	scheduledFor := todayUTC.Add(reminderHourUTC * time.Hour)

	var instructions []Instruction
	for _, task := range tasks {
		if task.IsCompleted {
			continue
		}
		sub := task.User.ActiveSubscription(now)
		if sub == nil {
			continue
		}

		var kind model.NotificationType
		switch {
		case plan.EntitlementsFor(sub.Plan.Name).AllowCustomReminder:
			if task.ReminderDate == nil || !inWindow(*task.ReminderDate, todayUTC, todayUTC.Add(24*time.Hour)) {
				continue
			}
			kind = model.CustomReminder
		default:
			if !inWindow(task.DueDate, todayUTC.Add(48*time.Hour), todayUTC.Add(72*time.Hour)) {
				continue
			}
			kind = model.DueDateReminder
		}

		if task.HasNotification(kind) {
			continue
		}

		instructions = append(instructions, Instruction{
			Task:         task,
			Type:         kind,
			ScheduledFor: scheduledFor,
			IsPro:        sub.Plan.Name == model.PlanPro,
		})
	}
	return instructions
}

// inWindow reports t ∈ [start, end).
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

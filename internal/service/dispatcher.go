package service

import (
	"context"
	"log"
	"sync"

	"task-reminder/internal/mail"
	"task-reminder/internal/repository"
)

// Dispatcher sends planned reminders. Each instruction is an
// independent unit of work: a transport failure for one task is logged
// and skipped without touching the others, and no ledger row is written
// for it, so the next daily run retries it naturally. The ledger write
// after a successful send is the commit point; delivery is therefore
// at-least-once.
type Dispatcher struct {
	transport mail.Transport
	ledger    *repository.NotificationRepository
	appURL    string
}

func NewDispatcher(transport mail.Transport, ledger *repository.NotificationRepository, appURL string) *Dispatcher {
	return &Dispatcher{transport: transport, ledger: ledger, appURL: appURL}
}

// Dispatch fans the instructions out concurrently and waits for all of
// them. Instructions share no mutable state; ledger uniqueness is
// enforced by the store, and losing a duplicate-write race counts as
// already sent.
func (d *Dispatcher) Dispatch(ctx context.Context, instructions []Instruction) {
	var wg sync.WaitGroup
	for _, instruction := range instructions {
		wg.Add(1)
		go func(ins Instruction) {
			defer wg.Done()
			d.send(ctx, ins)
		}(instruction)
	}
	wg.Wait()
}

func (d *Dispatcher) send(ctx context.Context, ins Instruction) {
	task := ins.Task

	dueDate := task.DueDate
	body, err := mail.RenderTaskReminder(mail.ReminderData{
		UserName:        task.User.Name,
		TaskTitle:       task.Title,
		TaskDescription: task.Description,
		DueDate:         &dueDate,
		ReminderDate:    task.ReminderDate,
		IsPro:           ins.IsPro,
		AppURL:          d.appURL,
	})
	if err != nil {
		remindersFailed.Inc()
		log.Printf("[warn] render reminder for task %s: %v", task.ID, err)
		return
	}

	if err := d.transport.Send(ctx, task.User.Email, mail.ReminderSubject(task.Title), body); err != nil {
		remindersFailed.Inc()
		log.Printf("[warn] send reminder for task %s to %s: %v", task.ID, task.User.Email, err)
		return
	}

	if err := d.ledger.RecordSent(ctx, task.ID, ins.Type, ins.ScheduledFor); err != nil {
		// The email went out but the ledger write failed; the next run
		// may send a duplicate. Accepted at-least-once tradeoff.
		log.Printf("[warn] record reminder for task %s: %v", task.ID, err)
		return
	}

	remindersSent.WithLabelValues(string(ins.Type)).Inc()
	log.Printf("[info] reminder sent for task %q to %s", task.Title, task.User.Email)
}

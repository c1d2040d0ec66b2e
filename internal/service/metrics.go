package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reminderRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reminder_runs_total",
		Help: "Number of reminder scheduling passes executed.",
	})
	remindersSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reminders_sent_total",
		Help: "Reminder emails sent and logged, by notification type.",
	}, []string{"type"})
	remindersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reminder_send_failures_total",
		Help: "Reminder sends that failed and will be retried next run.",
	})
)

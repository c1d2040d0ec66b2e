package service

import "errors"

// Entitlement and validation outcomes returned by the gate. Callers
// branch on these with errors.Is; they are part of the normal return
// contract, never panics.
var (
	// ErrNoSubscription means the user has no active, unexpired
	// subscription at all. Deliberately distinct from being on FREE.
	ErrNoSubscription = errors.New("NO_SUBSCRIPTION")
	// ErrTaskLimitReached means the plan's task quota is used up.
	ErrTaskLimitReached = errors.New("TASK_LIMIT_REACHED")

	ErrTitleRequired   = errors.New("task title is required")
	ErrDueDateRequired = errors.New("due date is required")
	// ErrReminderEqualsDue and ErrReminderAfterDue are kept separate so
	// clients can tell the two rejection reasons apart.
	ErrReminderEqualsDue = errors.New("reminder date cannot be equal to due date")
	ErrReminderAfterDue  = errors.New("reminder date must be before due date")

	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidLabels    = errors.New("invalid labels")
	ErrCategoryExists   = errors.New("category already exists")
	ErrLabelExists      = errors.New("label already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrLabelNotFound    = errors.New("label not found")
	ErrNameRequired     = errors.New("name is required")

	// ErrProFeature marks operations reserved for plans with the
	// categories-and-labels entitlement.
	ErrProFeature = errors.New("PRO_FEATURE_REQUIRED")

	ErrPlanNotFound         = errors.New("plan not found")
	ErrInvalidPlanName      = errors.New("invalid plan name")
	ErrNoActiveSubscription = errors.New("no active subscription found")
)

// Package plan maps subscription plan names to entitlements. Every place
// that branches on tier behavior consults this package instead of
// comparing plan names inline.
package plan

import "task-reminder/internal/model"

// Entitlements is the set of permissions a plan grants.
type Entitlements struct {
	// MaxTasks is the active-task ceiling, model.UnlimitedTasks for none.
	MaxTasks int
	// AllowCustomReminder permits a per-task reminder date.
	AllowCustomReminder bool
	// AllowCategoriesAndLabels permits organizing tasks.
	AllowCategoriesAndLabels bool
}

// Unlimited reports whether the plan has no task quota.
func (e Entitlements) Unlimited() bool {
	return e.MaxTasks == model.UnlimitedTasks
}

// None is the zero entitlement set, applied when a user has no active
// subscription. It is deliberately distinct from FREE: task creation is
// blocked outright rather than downgraded.
var None = Entitlements{MaxTasks: 0}

// EntitlementsFor returns the entitlements granted by the named plan.
// Unknown names get no entitlements.
func EntitlementsFor(name model.PlanName) Entitlements {
	switch name {
	case model.PlanFree:
		return Entitlements{MaxTasks: 10}
	case model.PlanPro:
		return Entitlements{
			MaxTasks:                 model.UnlimitedTasks,
			AllowCustomReminder:      true,
			AllowCategoriesAndLabels: true,
		}
	default:
		return None
	}
}

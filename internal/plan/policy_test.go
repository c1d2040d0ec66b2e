package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"task-reminder/internal/model"
)

func TestEntitlementsFor(t *testing.T) {
	tests := []struct {
		name string
		plan model.PlanName
		want Entitlements
	}{
		{"free", model.PlanFree, Entitlements{MaxTasks: 10}},
		{"pro", model.PlanPro, Entitlements{
			MaxTasks:                 model.UnlimitedTasks,
			AllowCustomReminder:      true,
			AllowCategoriesAndLabels: true,
		}},
		{"unknown", model.PlanName("ENTERPRISE"), None},
		{"empty", model.PlanName(""), None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EntitlementsFor(tt.plan))
		})
	}
}

func TestUnlimited(t *testing.T) {
	assert.True(t, EntitlementsFor(model.PlanPro).Unlimited())
	assert.False(t, EntitlementsFor(model.PlanFree).Unlimited())
	assert.False(t, None.Unlimited())
}

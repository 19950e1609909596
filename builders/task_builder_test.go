package builders

import (
	"testing"

	"backoffice/constants"
	"backoffice/models"

	"github.com/stretchr/testify/assert"
)

func TestHousekeepingTaskBuilderDefaults(t *testing.T) {
	task := NewHousekeepingTaskBuilder().
		ForRoom("p1", "r1").
		WithType(constants.TaskTypeCleaning).
		WithPriority("").
		Build()

	assert.Equal(t, "p1", task.PropertyID)
	assert.Equal(t, "r1", task.RoomID)
	assert.Equal(t, constants.TaskStatusPending, task.Status)
	assert.Equal(t, constants.PriorityNormal, task.Priority)
	assert.Nil(t, task.AssignedStaffID)
	assert.Equal(t, models.AttributesVersion, task.Checklist.Version)
}

func TestHousekeepingTaskBuilderOverrides(t *testing.T) {
	staff := "s1"
	estimate := 45
	checklist := models.NewAttributes()
	checklist.Values["linen"] = models.BoolValue(true)

	task := NewHousekeepingTaskBuilder().
		ForRoom("p1", "r1").
		AssignedTo(&staff, "manager").
		WithType(constants.TaskTypeDeepClean).
		WithPriority(constants.PriorityUrgent).
		ScheduledAt(1_000).
		WithEstimate(&estimate).
		WithNotes("VIP arrival").
		WithChecklist(&checklist).
		Build()

	assert.Equal(t, &staff, task.AssignedStaffID)
	assert.Equal(t, "manager", task.AssignedBy)
	assert.Equal(t, constants.PriorityUrgent, task.Priority)
	assert.Equal(t, int64(1_000), task.ScheduledAt)
	assert.Equal(t, 45, *task.EstimatedDuration)
	assert.True(t, task.Checklist.Flag("linen"))
}

package builders

import (
	"backoffice/constants"
	"backoffice/models"
)

// HousekeepingTaskBuilder assembles a new task step by step. Unset fields
// keep their defaults: pending, normal priority, empty checklist.
type HousekeepingTaskBuilder struct {
	task *models.HousekeepingTask
}

func NewHousekeepingTaskBuilder() *HousekeepingTaskBuilder {
	return &HousekeepingTaskBuilder{
		task: &models.HousekeepingTask{
			Status:    constants.TaskStatusPending,
			Priority:  constants.PriorityNormal,
			Checklist: models.NewAttributes(),
		},
	}
}

// ForRoom places the task on a room of a property.
func (b *HousekeepingTaskBuilder) ForRoom(propertyID, roomID string) *HousekeepingTaskBuilder {
	b.task.PropertyID = propertyID
	b.task.RoomID = roomID
	return b
}

// AssignedTo sets the staff member; nil leaves the task unassigned.
func (b *HousekeepingTaskBuilder) AssignedTo(staffID *string, assignedBy string) *HousekeepingTaskBuilder {
	b.task.AssignedStaffID = staffID
	b.task.AssignedBy = assignedBy
	return b
}

func (b *HousekeepingTaskBuilder) WithType(taskType string) *HousekeepingTaskBuilder {
	b.task.TaskType = taskType
	return b
}

func (b *HousekeepingTaskBuilder) WithPriority(priority string) *HousekeepingTaskBuilder {
	if priority != "" {
		b.task.Priority = priority
	}
	return b
}

// ScheduledAt is in epoch milliseconds.
func (b *HousekeepingTaskBuilder) ScheduledAt(ms int64) *HousekeepingTaskBuilder {
	b.task.ScheduledAt = ms
	return b
}

// WithEstimate sets the estimated duration in minutes.
func (b *HousekeepingTaskBuilder) WithEstimate(minutes *int) *HousekeepingTaskBuilder {
	b.task.EstimatedDuration = minutes
	return b
}

func (b *HousekeepingTaskBuilder) WithNotes(notes string) *HousekeepingTaskBuilder {
	b.task.Notes = notes
	return b
}

func (b *HousekeepingTaskBuilder) WithChecklist(checklist *models.Attributes) *HousekeepingTaskBuilder {
	if checklist != nil {
		b.task.Checklist = *checklist
	}
	return b
}

// Build returns a copy, so the builder can be reused.
func (b *HousekeepingTaskBuilder) Build() models.HousekeepingTask {
	return *b.task
}

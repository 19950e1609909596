package services

import (
	"math"

	"backoffice/constants"
	"backoffice/errors"
	"backoffice/models"
)

// taskTransitions lists the statuses each status may move to through an
// update. completed and skipped are terminal; only ReopenHousekeepingTask
// leaves them.
var taskTransitions = map[string][]string{
	constants.TaskStatusPending: {
		constants.TaskStatusInProgress,
		constants.TaskStatusCompleted,
		constants.TaskStatusSkipped,
	},
	constants.TaskStatusInProgress: {
		constants.TaskStatusCompleted,
		constants.TaskStatusSkipped,
	},
}

func canTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range taskTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// taskChange is the lifecycle part of a create or update request. Nil fields
// were not supplied by the caller.
type taskChange struct {
	Status         *string
	StartedAt      *int64
	CompletedAt    *int64
	ActualDuration *int
}

// applyTaskLifecycle moves task from its persisted status prev to the
// requested status and derives timestamps and duration. prev is empty for a
// task being created. now is epoch milliseconds.
func applyTaskLifecycle(task *models.HousekeepingTask, prev string, change taskChange, now int64) error {
	target := prev
	if change.Status != nil {
		target = *change.Status
	}
	if target == "" {
		target = constants.TaskStatusPending
	}
	if prev != "" && !canTransition(prev, target) {
		return errors.Conflict("invalid status transition: %s -> %s", prev, target)
	}
	task.Status = target

	if change.StartedAt != nil {
		task.StartedAt = int64Ptr(*change.StartedAt)
	}
	if change.CompletedAt != nil {
		task.CompletedAt = int64Ptr(*change.CompletedAt)
	}

	if target == constants.TaskStatusInProgress && prev != constants.TaskStatusInProgress && change.StartedAt == nil {
		task.StartedAt = int64Ptr(now)
	}
	if target == constants.TaskStatusCompleted && prev != constants.TaskStatusCompleted {
		if change.CompletedAt == nil {
			task.CompletedAt = int64Ptr(now)
		}
		if task.StartedAt != nil {
			if *task.CompletedAt < *task.StartedAt {
				return errors.Conflict("completedAt must not be before startedAt")
			}
			task.ActualDuration = intPtr(durationMinutes(*task.StartedAt, *task.CompletedAt))
		}
	}
	if change.ActualDuration != nil {
		task.ActualDuration = intPtr(*change.ActualDuration)
	}
	return nil
}

// reopenTask puts a terminal task back to pending and clears what the
// previous run derived.
func reopenTask(task *models.HousekeepingTask) error {
	if task.Status != constants.TaskStatusCompleted && task.Status != constants.TaskStatusSkipped {
		return errors.Conflict("only completed or skipped tasks can be reopened")
	}
	task.Status = constants.TaskStatusPending
	task.StartedAt = nil
	task.CompletedAt = nil
	task.ActualDuration = nil
	return nil
}

// taskDeletable gates deletion on the persisted status.
func taskDeletable(status string) error {
	switch status {
	case constants.TaskStatusInProgress:
		return errors.Conflict("cannot delete a task that is in progress")
	case constants.TaskStatusCompleted:
		return errors.Conflict("cannot delete a completed task")
	}
	return nil
}

// durationMinutes rounds half up to whole minutes.
func durationMinutes(startedAt, completedAt int64) int {
	return int(math.Floor(float64(completedAt-startedAt)/60000 + 0.5))
}

func int64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

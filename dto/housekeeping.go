package dto

import "backoffice/models"

type CreateStaffRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	Name       string `json:"name" binding:"required,max=200"`
	Email      string `json:"email" binding:"omitempty,email"`
	Position   string `json:"position"`
	IsActive   *bool  `json:"isActive"`
}

type UpdateStaffRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Position *string `json:"position"`
	IsActive *bool   `json:"isActive"`
}

// CreateHousekeepingTaskRequest: all instants are epoch milliseconds and
// durations are minutes. ScheduledAt defaults to now and Status to pending.
type CreateHousekeepingTaskRequest struct {
	PropertyID        string             `json:"propertyId" binding:"required"`
	RoomID            string             `json:"roomId" binding:"required"`
	AssignedStaffID   string             `json:"assignedStaffId"`
	AssignedBy        string             `json:"assignedBy"`
	TaskType          string             `json:"taskType" binding:"required,oneof=cleaning inspection maintenance turndown deep-clean"`
	Status            string             `json:"status" binding:"omitempty,oneof=pending in-progress completed skipped"`
	Priority          string             `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	ScheduledAt       int64              `json:"scheduledAt"`
	StartedAt         *int64             `json:"startedAt"`
	CompletedAt       *int64             `json:"completedAt"`
	EstimatedDuration *int               `json:"estimatedDuration" binding:"omitempty,min=0"`
	ActualDuration    *int               `json:"actualDuration" binding:"omitempty,min=0"`
	Notes             string             `json:"notes"`
	Checklist         *models.Attributes `json:"checklist"`
}

// UpdateHousekeepingTaskRequest: an empty AssignedStaffID unassigns the task.
type UpdateHousekeepingTaskRequest struct {
	RoomID            *string            `json:"roomId" binding:"omitempty,min=1"`
	AssignedStaffID   *string            `json:"assignedStaffId"`
	AssignedBy        *string            `json:"assignedBy"`
	TaskType          *string            `json:"taskType" binding:"omitempty,oneof=cleaning inspection maintenance turndown deep-clean"`
	Status            *string            `json:"status" binding:"omitempty,oneof=pending in-progress completed skipped"`
	Priority          *string            `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	ScheduledAt       *int64             `json:"scheduledAt"`
	StartedAt         *int64             `json:"startedAt"`
	CompletedAt       *int64             `json:"completedAt"`
	EstimatedDuration *int               `json:"estimatedDuration" binding:"omitempty,min=0"`
	ActualDuration    *int               `json:"actualDuration" binding:"omitempty,min=0"`
	Notes             *string            `json:"notes"`
	Checklist         *models.Attributes `json:"checklist"`
}

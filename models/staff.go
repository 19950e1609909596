package models

type Staff struct {
	Base
	PropertyID string `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	Name       string `json:"name" gorm:"not null"`
	Email      string `json:"email,omitempty"`
	Position   string `json:"position"`
	IsActive   bool   `json:"isActive" gorm:"not null"`
}

func (Staff) TableName() string { return "staff" }

// HousekeepingTask is an operational work item on a room. All instants are
// epoch milliseconds; durations are minutes.
type HousekeepingTask struct {
	Base
	PropertyID        string     `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	RoomID            string     `json:"roomId" gorm:"type:varchar(36);not null;index"`
	AssignedStaffID   *string    `json:"assignedStaffId,omitempty" gorm:"type:varchar(36);index"`
	AssignedBy        string     `json:"assignedBy,omitempty"`
	TaskType          string     `json:"taskType" gorm:"not null"`
	Status            string     `json:"status" gorm:"not null;default:pending"`
	Priority          string     `json:"priority" gorm:"default:normal"`
	ScheduledAt       int64      `json:"scheduledAt"`
	StartedAt         *int64     `json:"startedAt,omitempty"`
	CompletedAt       *int64     `json:"completedAt,omitempty"`
	EstimatedDuration *int       `json:"estimatedDuration,omitempty"`
	ActualDuration    *int       `json:"actualDuration,omitempty"`
	Notes             string     `json:"notes"`
	Checklist         Attributes `json:"checklist" gorm:"type:jsonb"`
}

func (HousekeepingTask) TableName() string { return "housekeeping_tasks" }

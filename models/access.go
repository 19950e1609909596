package models

type User struct {
	Base
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null;index"`
	IsActive bool   `json:"isActive" gorm:"not null"`
}

func (User) TableName() string { return "users" }

type Role struct {
	Base
	Name         string     `json:"name" gorm:"not null;index"`
	Description  string     `json:"description"`
	Permissions  Attributes `json:"permissions" gorm:"type:jsonb"`
	IsSystemRole bool       `json:"isSystemRole"`
}

func (Role) TableName() string { return "roles" }

// UserRole grants a role to a user at one property.
type UserRole struct {
	Base
	UserID     string `json:"userId" gorm:"type:varchar(36);not null;index"`
	RoleID     string `json:"roleId" gorm:"type:varchar(36);not null;index"`
	PropertyID string `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	AssignedBy string `json:"assignedBy,omitempty"`
}

func (UserRole) TableName() string { return "user_roles" }

package dto

import "backoffice/models"

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	IsActive *bool  `json:"isActive"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email    *string `json:"email" binding:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}

type CreateRoleRequest struct {
	Name         string             `json:"name" binding:"required,max=100"`
	Description  string             `json:"description"`
	Permissions  *models.Attributes `json:"permissions"`
	IsSystemRole bool               `json:"isSystemRole"`
}

// UpdateRoleRequest: IsSystemRole may promote a role but never demote one.
type UpdateRoleRequest struct {
	Name         *string            `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string            `json:"description"`
	Permissions  *models.Attributes `json:"permissions"`
	IsSystemRole *bool              `json:"isSystemRole"`
}

type CreateUserRoleRequest struct {
	UserID     string `json:"userId" binding:"required"`
	RoleID     string `json:"roleId" binding:"required"`
	PropertyID string `json:"propertyId" binding:"required"`
	AssignedBy string `json:"assignedBy"`
}

type UpdateUserRoleRequest struct {
	UserID     *string `json:"userId" binding:"omitempty,min=1"`
	RoleID     *string `json:"roleId" binding:"omitempty,min=1"`
	PropertyID *string `json:"propertyId" binding:"omitempty,min=1"`
	AssignedBy *string `json:"assignedBy"`
}

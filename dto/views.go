package dto

import "backoffice/models"

// Views attach directly related rows to an entity for reads. A nil pointer
// means the referenced row does not exist (anymore).

type RoomView struct {
	Room     models.Room      `json:"room"`
	RoomType *models.RoomType `json:"roomType"`
}

type RatePlanView struct {
	RatePlan models.RatePlan  `json:"ratePlan"`
	RoomType *models.RoomType `json:"roomType"`
}

type ReservationView struct {
	Reservation models.Reservation `json:"reservation"`
	Guest       *models.Guest      `json:"guest"`
	Room        *models.Room       `json:"room"`
}

type HousekeepingTaskView struct {
	Task       models.HousekeepingTask `json:"task"`
	Room       *RoomView               `json:"room"`
	Staff      *models.Staff           `json:"staff"`
	AssignedBy Assignee                `json:"assignedBy"`
}

type InventoryItemView struct {
	Item     models.InventoryItem `json:"item"`
	Supplier *models.Supplier     `json:"supplier"`
}

type PurchaseOrderView struct {
	Order    models.PurchaseOrder `json:"order"`
	Supplier *models.Supplier     `json:"supplier"`
}

type PurchaseOrderLineView struct {
	Line          models.PurchaseOrderLine `json:"line"`
	InventoryItem *models.InventoryItem    `json:"inventoryItem"`
	PurchaseOrder *models.PurchaseOrder    `json:"purchaseOrder"`
}

type RecipeLineView struct {
	Line          models.RecipeLine     `json:"line"`
	InventoryItem *models.InventoryItem `json:"inventoryItem"`
}

type RecipeView struct {
	Recipe   models.Recipe       `json:"recipe"`
	MenuItem *models.FnbMenuItem `json:"menuItem"`
	Lines    []RecipeLineView    `json:"lines"`
}

type UserRoleView struct {
	UserRole   models.UserRole  `json:"userRole"`
	User       *models.User     `json:"user"`
	Role       *models.Role     `json:"role"`
	Property   *models.Property `json:"property"`
	AssignedBy Assignee         `json:"assignedBy"`
}

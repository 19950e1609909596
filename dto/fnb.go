package dto

type CreateFnbMenuItemRequest struct {
	PropertyID  string  `json:"propertyId" binding:"required"`
	Name        string  `json:"name" binding:"required,max=200"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"min=0"`
	Cost        float64 `json:"cost" binding:"min=0"`
	IsAvailable *bool   `json:"isAvailable"`
}

type UpdateFnbMenuItemRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Cost        *float64 `json:"cost" binding:"omitempty,min=0"`
	IsAvailable *bool    `json:"isAvailable"`
}

type CreateRecipeRequest struct {
	MenuItemID   string  `json:"menuItemId" binding:"required"`
	Name         string  `json:"name" binding:"required,max=200"`
	Instructions string  `json:"instructions"`
	Yield        float64 `json:"yield" binding:"min=0"`
}

type UpdateRecipeRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Instructions *string  `json:"instructions"`
	Yield        *float64 `json:"yield" binding:"omitempty,min=0"`
}

type CreateRecipeLineRequest struct {
	RecipeID        string  `json:"recipeId" binding:"required"`
	InventoryItemID string  `json:"inventoryItemId" binding:"required"`
	Quantity        float64 `json:"quantity" binding:"required,gt=0"`
	Unit            string  `json:"unit"`
}

type UpdateRecipeLineRequest struct {
	InventoryItemID *string  `json:"inventoryItemId" binding:"omitempty,min=1"`
	Quantity        *float64 `json:"quantity" binding:"omitempty,gt=0"`
	Unit            *string  `json:"unit"`
}

// RepairReport is the outcome of an orphaned recipe line sweep.
type RepairReport struct {
	Scanned int      `json:"scanned"`
	Removed []string `json:"removed"`
}

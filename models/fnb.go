package models

type FnbMenuItem struct {
	Base
	PropertyID  string  `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	Name        string  `json:"name" gorm:"not null"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	IsAvailable bool    `json:"isAvailable" gorm:"not null"`
}

func (FnbMenuItem) TableName() string { return "fnb_menu_items" }

// Recipe belongs to exactly one menu item.
type Recipe struct {
	Base
	MenuItemID   string  `json:"menuItemId" gorm:"type:varchar(36);not null;index"`
	Name         string  `json:"name" gorm:"not null"`
	Instructions string  `json:"instructions"`
	Yield        float64 `json:"yield"`
}

func (Recipe) TableName() string { return "recipes" }

type RecipeLine struct {
	Base
	RecipeID        string  `json:"recipeId" gorm:"type:varchar(36);not null;index"`
	InventoryItemID string  `json:"inventoryItemId" gorm:"type:varchar(36);not null;index"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
}

func (RecipeLine) TableName() string { return "recipe_lines" }

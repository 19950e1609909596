package dto

type CreateSupplierRequest struct {
	PropertyID  string `json:"propertyId" binding:"required"`
	Name        string `json:"name" binding:"required,max=200"`
	ContactName string `json:"contactName"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateSupplierRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	IsActive    *bool   `json:"isActive"`
}

type CreateInventoryItemRequest struct {
	PropertyID      string  `json:"propertyId" binding:"required"`
	SupplierID      string  `json:"supplierId"`
	SKU             string  `json:"sku" binding:"required,max=64"`
	Name            string  `json:"name" binding:"required,max=200"`
	Category        string  `json:"category"`
	Unit            string  `json:"unit"`
	CurrentQuantity float64 `json:"currentQuantity" binding:"min=0"`
	ReorderPoint    float64 `json:"reorderPoint" binding:"min=0"`
	UnitCost        float64 `json:"unitCost" binding:"min=0"`
}

// UpdateInventoryItemRequest: an empty SupplierID detaches the supplier.
// Quantity moves through inventory transactions, not through this request.
type UpdateInventoryItemRequest struct {
	SupplierID   *string  `json:"supplierId"`
	SKU          *string  `json:"sku" binding:"omitempty,min=1,max=64"`
	Name         *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Category     *string  `json:"category"`
	Unit         *string  `json:"unit"`
	ReorderPoint *float64 `json:"reorderPoint" binding:"omitempty,min=0"`
	UnitCost     *float64 `json:"unitCost" binding:"omitempty,min=0"`
}

// CreateInventoryTransactionRequest: Quantity is a magnitude for receipt,
// issue and waste, and a signed delta for adjustment.
type CreateInventoryTransactionRequest struct {
	PropertyID      string   `json:"propertyId" binding:"required"`
	InventoryItemID string   `json:"inventoryItemId" binding:"required"`
	Type            string   `json:"type" binding:"required,oneof=receipt issue adjustment waste"`
	Quantity        float64  `json:"quantity" binding:"required"`
	UnitCost        *float64 `json:"unitCost" binding:"omitempty,min=0"`
	Reference       string   `json:"reference"`
	Notes           string   `json:"notes"`
}

// UpdateInventoryTransactionRequest only touches descriptive fields; the
// stock movement itself is immutable.
type UpdateInventoryTransactionRequest struct {
	Reference *string `json:"reference"`
	Notes     *string `json:"notes"`
}

type CreatePurchaseOrderRequest struct {
	PropertyID   string  `json:"propertyId" binding:"required"`
	SupplierID   string  `json:"supplierId" binding:"required"`
	OrderNumber  string  `json:"orderNumber" binding:"required,max=64"`
	Status       string  `json:"status" binding:"omitempty,oneof=draft submitted partially-received received cancelled"`
	OrderDate    int64   `json:"orderDate"`
	ExpectedDate *int64  `json:"expectedDate"`
	TotalAmount  float64 `json:"totalAmount" binding:"min=0"`
	Notes        string  `json:"notes"`
}

type UpdatePurchaseOrderRequest struct {
	SupplierID   *string  `json:"supplierId" binding:"omitempty,min=1"`
	OrderNumber  *string  `json:"orderNumber" binding:"omitempty,min=1,max=64"`
	Status       *string  `json:"status" binding:"omitempty,oneof=draft submitted partially-received received cancelled"`
	OrderDate    *int64   `json:"orderDate"`
	ExpectedDate *int64   `json:"expectedDate"`
	TotalAmount  *float64 `json:"totalAmount" binding:"omitempty,min=0"`
	Notes        *string  `json:"notes"`
}

// CreatePurchaseOrderLineRequest: TotalPrice is stored as given.
type CreatePurchaseOrderLineRequest struct {
	PurchaseOrderID  string   `json:"purchaseOrderId" binding:"required"`
	InventoryItemID  string   `json:"inventoryItemId" binding:"required"`
	Quantity         float64  `json:"quantity" binding:"required,gt=0"`
	UnitPrice        float64  `json:"unitPrice" binding:"min=0"`
	TotalPrice       float64  `json:"totalPrice" binding:"min=0"`
	ReceivedQuantity *float64 `json:"receivedQuantity" binding:"omitempty,min=0"`
}

type UpdatePurchaseOrderLineRequest struct {
	InventoryItemID  *string  `json:"inventoryItemId" binding:"omitempty,min=1"`
	Quantity         *float64 `json:"quantity" binding:"omitempty,gt=0"`
	UnitPrice        *float64 `json:"unitPrice" binding:"omitempty,min=0"`
	TotalPrice       *float64 `json:"totalPrice" binding:"omitempty,min=0"`
	ReceivedQuantity *float64 `json:"receivedQuantity" binding:"omitempty,min=0"`
}

package models

type Supplier struct {
	Base
	PropertyID  string `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	Name        string `json:"name" gorm:"not null"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	IsActive    bool   `json:"isActive" gorm:"not null"`
}

func (Supplier) TableName() string { return "suppliers" }

type InventoryItem struct {
	Base
	PropertyID      string  `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	SupplierID      *string `json:"supplierId,omitempty" gorm:"type:varchar(36);index"`
	SKU             string  `json:"sku" gorm:"column:sku;not null"`
	Name            string  `json:"name" gorm:"not null"`
	Category        string  `json:"category"`
	Unit            string  `json:"unit"`
	CurrentQuantity float64 `json:"currentQuantity"`
	ReorderPoint    float64 `json:"reorderPoint"`
	UnitCost        float64 `json:"unitCost"`
	LastCostUpdate  int64   `json:"lastCostUpdate"`
}

func (InventoryItem) TableName() string { return "inventory_items" }

func (i *InventoryItem) NeedsReorder() bool {
	return i.CurrentQuantity <= i.ReorderPoint
}

// InventoryTransaction records a stock movement. Quantity is signed only for
// adjustments.
type InventoryTransaction struct {
	Base
	PropertyID      string   `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	InventoryItemID string   `json:"inventoryItemId" gorm:"type:varchar(36);not null;index"`
	Type            string   `json:"type" gorm:"not null"`
	Quantity        float64  `json:"quantity"`
	UnitCost        *float64 `json:"unitCost,omitempty"`
	Reference       string   `json:"reference,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

func (InventoryTransaction) TableName() string { return "inventory_transactions" }

type PurchaseOrder struct {
	Base
	PropertyID   string  `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	SupplierID   string  `json:"supplierId" gorm:"type:varchar(36);not null;index"`
	OrderNumber  string  `json:"orderNumber" gorm:"not null"`
	Status       string  `json:"status" gorm:"default:draft"`
	OrderDate    int64   `json:"orderDate"`
	ExpectedDate *int64  `json:"expectedDate,omitempty"`
	TotalAmount  float64 `json:"totalAmount"`
	Notes        string  `json:"notes,omitempty"`
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }

// PurchaseOrderLine.TotalPrice is supplied by the caller and expected to equal
// Quantity*UnitPrice; it is stored as given.
type PurchaseOrderLine struct {
	Base
	PurchaseOrderID  string   `json:"purchaseOrderId" gorm:"type:varchar(36);not null;index"`
	InventoryItemID  string   `json:"inventoryItemId" gorm:"type:varchar(36);not null;index"`
	Quantity         float64  `json:"quantity"`
	UnitPrice        float64  `json:"unitPrice"`
	TotalPrice       float64  `json:"totalPrice"`
	ReceivedQuantity *float64 `json:"receivedQuantity,omitempty"`
}

func (PurchaseOrderLine) TableName() string { return "purchase_order_lines" }

package models

// Record is implemented by every stored row. Ids are assigned by the store.
type Record interface {
	GetID() string
	SetID(id string)
}

// Timestamped rows get createdAt once on insert and updatedAt on every write.
type Timestamped interface {
	SetCreatedAt(ms int64)
	SetUpdatedAt(ms int64)
}

// Base carries the identity and epoch-millisecond timestamps shared by mutable
// rows. The store stamps both from its clock, so gorm's own tracking is off.
type Base struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt int64  `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt int64  `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

func (b *Base) GetID() string { return b.ID }

func (b *Base) SetID(id string) { b.ID = id }

func (b *Base) SetCreatedAt(ms int64) { b.CreatedAt = ms }

func (b *Base) SetUpdatedAt(ms int64) { b.UpdatedAt = ms }

// All lists every table for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Property{}, &RoomType{}, &Room{}, &RatePlan{}, &Guest{}, &Reservation{},
		&Staff{}, &HousekeepingTask{}, &Supplier{}, &InventoryItem{}, &InventoryTransaction{},
		&PurchaseOrder{}, &PurchaseOrderLine{}, &FnbMenuItem{}, &Recipe{}, &RecipeLine{},
		&User{}, &Role{}, &UserRole{},
	}
}

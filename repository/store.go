package repository

import (
	"context"
	"time"

	"backoffice/models"

	"gorm.io/gorm"
)

// Store groups one Table per entity. It is injected into the services layer;
// there is no package-level handle.
type Store struct {
	Properties            Table[models.Property]
	RoomTypes             Table[models.RoomType]
	Rooms                 Table[models.Room]
	RatePlans             Table[models.RatePlan]
	Guests                Table[models.Guest]
	Reservations          Table[models.Reservation]
	Staff                 Table[models.Staff]
	HousekeepingTasks     Table[models.HousekeepingTask]
	Suppliers             Table[models.Supplier]
	InventoryItems        Table[models.InventoryItem]
	InventoryTransactions Table[models.InventoryTransaction]
	PurchaseOrders        Table[models.PurchaseOrder]
	PurchaseOrderLines    Table[models.PurchaseOrderLine]
	FnbMenuItems          Table[models.FnbMenuItem]
	Recipes               Table[models.Recipe]
	RecipeLines           Table[models.RecipeLine]
	Users                 Table[models.User]
	Roles                 Table[models.Role]
	UserRoles             Table[models.UserRole]

	tx func(ctx context.Context, fn func(*Store) error) error
}

// Index names shared by both backends.
const (
	ByProperty      = "property_id"
	ByRoomType      = "room_type_id"
	ByRoom          = "room_id"
	ByGuest         = "guest_id"
	ByStaff         = "assigned_staff_id"
	BySupplier      = "supplier_id"
	ByInventoryItem = "inventory_item_id"
	ByPurchaseOrder = "purchase_order_id"
	ByMenuItem      = "menu_item_id"
	ByRecipe        = "recipe_id"
	ByUser          = "user_id"
	ByRole          = "role_id"
)

// NewMemoryStore returns a store kept in process memory. It does not support
// multi-table transactions.
func NewMemoryStore(clock Clock) *Store {
	if clock == nil {
		clock = time.Now
	}
	return build(backend{clock: clock})
}

// NewPostgresStore returns a store on top of a gorm postgres connection.
func NewPostgresStore(db *gorm.DB, clock Clock) *Store {
	if clock == nil {
		clock = time.Now
	}
	s := build(backend{db: db, clock: clock})
	s.tx = func(ctx context.Context, fn func(*Store) error) error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(build(backend{db: tx, clock: clock}))
		})
	}
	return s
}

// Migrate creates or updates every table. It is a boot-time bootstrap, not a
// migration engine.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

// SupportsTransactions reports whether RunInTransaction is atomic.
func (s *Store) SupportsTransactions() bool {
	return s.tx != nil
}

// RunInTransaction runs fn against a transactional view of the store. When the
// backend has no transactions fn runs directly against s and every call inside
// it commits on its own.
func (s *Store) RunInTransaction(ctx context.Context, fn func(*Store) error) error {
	if s.tx == nil {
		return fn(s)
	}
	return s.tx(ctx, fn)
}

type backend struct {
	db    *gorm.DB
	clock Clock
}

func newTable[T any, P recordPtr[T]](b backend, name string, indexes Indexes[T]) Table[T] {
	if indexes == nil {
		indexes = Indexes[T]{}
	}
	if b.db != nil {
		return &gormTable[T, P]{db: b.db, name: name, indexes: indexes, clock: b.clock}
	}
	return newMemoryTable[T, P](name, indexes, b.clock)
}

func optional(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func build(b backend) *Store {
	return &Store{
		Properties: newTable[models.Property](b, "properties", nil),
		RoomTypes: newTable[models.RoomType](b, "room_types", Indexes[models.RoomType]{
			ByProperty: func(r models.RoomType) string { return r.PropertyID },
		}),
		Rooms: newTable[models.Room](b, "rooms", Indexes[models.Room]{
			ByProperty: func(r models.Room) string { return r.PropertyID },
			ByRoomType: func(r models.Room) string { return r.RoomTypeID },
		}),
		RatePlans: newTable[models.RatePlan](b, "rate_plans", Indexes[models.RatePlan]{
			ByProperty: func(r models.RatePlan) string { return r.PropertyID },
			ByRoomType: func(r models.RatePlan) string { return r.RoomTypeID },
		}),
		Guests: newTable[models.Guest](b, "guests", Indexes[models.Guest]{
			ByProperty: func(r models.Guest) string { return r.PropertyID },
		}),
		Reservations: newTable[models.Reservation](b, "reservations", Indexes[models.Reservation]{
			ByProperty: func(r models.Reservation) string { return r.PropertyID },
			ByGuest:    func(r models.Reservation) string { return r.GuestID },
			ByRoom:     func(r models.Reservation) string { return r.RoomID },
		}),
		Staff: newTable[models.Staff](b, "staff", Indexes[models.Staff]{
			ByProperty: func(r models.Staff) string { return r.PropertyID },
		}),
		HousekeepingTasks: newTable[models.HousekeepingTask](b, "housekeeping_tasks", Indexes[models.HousekeepingTask]{
			ByProperty: func(r models.HousekeepingTask) string { return r.PropertyID },
			ByRoom:     func(r models.HousekeepingTask) string { return r.RoomID },
			ByStaff:    func(r models.HousekeepingTask) string { return optional(r.AssignedStaffID) },
		}),
		Suppliers: newTable[models.Supplier](b, "suppliers", Indexes[models.Supplier]{
			ByProperty: func(r models.Supplier) string { return r.PropertyID },
		}),
		InventoryItems: newTable[models.InventoryItem](b, "inventory_items", Indexes[models.InventoryItem]{
			ByProperty: func(r models.InventoryItem) string { return r.PropertyID },
			BySupplier: func(r models.InventoryItem) string { return optional(r.SupplierID) },
		}),
		InventoryTransactions: newTable[models.InventoryTransaction](b, "inventory_transactions", Indexes[models.InventoryTransaction]{
			ByProperty:      func(r models.InventoryTransaction) string { return r.PropertyID },
			ByInventoryItem: func(r models.InventoryTransaction) string { return r.InventoryItemID },
		}),
		PurchaseOrders: newTable[models.PurchaseOrder](b, "purchase_orders", Indexes[models.PurchaseOrder]{
			ByProperty: func(r models.PurchaseOrder) string { return r.PropertyID },
			BySupplier: func(r models.PurchaseOrder) string { return r.SupplierID },
		}),
		PurchaseOrderLines: newTable[models.PurchaseOrderLine](b, "purchase_order_lines", Indexes[models.PurchaseOrderLine]{
			ByPurchaseOrder: func(r models.PurchaseOrderLine) string { return r.PurchaseOrderID },
			ByInventoryItem: func(r models.PurchaseOrderLine) string { return r.InventoryItemID },
		}),
		FnbMenuItems: newTable[models.FnbMenuItem](b, "fnb_menu_items", Indexes[models.FnbMenuItem]{
			ByProperty: func(r models.FnbMenuItem) string { return r.PropertyID },
		}),
		Recipes: newTable[models.Recipe](b, "recipes", Indexes[models.Recipe]{
			ByMenuItem: func(r models.Recipe) string { return r.MenuItemID },
		}),
		RecipeLines: newTable[models.RecipeLine](b, "recipe_lines", Indexes[models.RecipeLine]{
			ByRecipe:        func(r models.RecipeLine) string { return r.RecipeID },
			ByInventoryItem: func(r models.RecipeLine) string { return r.InventoryItemID },
		}),
		Users: newTable[models.User](b, "users", nil),
		Roles: newTable[models.Role](b, "roles", nil),
		UserRoles: newTable[models.UserRole](b, "user_roles", Indexes[models.UserRole]{
			ByProperty: func(r models.UserRole) string { return r.PropertyID },
			ByUser:     func(r models.UserRole) string { return r.UserID },
			ByRole:     func(r models.UserRole) string { return r.RoleID },
		}),
	}
}

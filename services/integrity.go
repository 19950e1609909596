package services

import (
	"context"
	stderrors "errors"
	"strings"

	"backoffice/constants"
	"backoffice/errors"
	"backoffice/models"
	"backoffice/repository"
)

// requireRow loads a referenced row. A missing row is a REFERENCE_ERROR naming
// the reference.
func requireRow[T any](ctx context.Context, table repository.Table[T], id, label string) (T, error) {
	row, err := table.Get(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return row, errors.Reference("%s not found", label)
	}
	return row, err
}

// sameProperty rejects a reference owned by another tenant.
func sameProperty(label, owner, expected string) error {
	if owner != expected {
		return errors.Reference("%s belongs to another property", label)
	}
	return nil
}

func (s *Service) requireProperty(ctx context.Context, id string) (models.Property, error) {
	return requireRow(ctx, s.store.Properties, id, "property")
}

func (s *Service) requireRoomType(ctx context.Context, id, propertyID string) (models.RoomType, error) {
	rt, err := requireRow(ctx, s.store.RoomTypes, id, "room type")
	if err != nil {
		return rt, err
	}
	return rt, sameProperty("room type", rt.PropertyID, propertyID)
}

func (s *Service) requireRoom(ctx context.Context, id, propertyID string) (models.Room, error) {
	room, err := requireRow(ctx, s.store.Rooms, id, "room")
	if err != nil {
		return room, err
	}
	return room, sameProperty("room", room.PropertyID, propertyID)
}

func (s *Service) requireGuest(ctx context.Context, id, propertyID string) (models.Guest, error) {
	g, err := requireRow(ctx, s.store.Guests, id, "guest")
	if err != nil {
		return g, err
	}
	return g, sameProperty("guest", g.PropertyID, propertyID)
}

func (s *Service) requireStaff(ctx context.Context, id, propertyID string) (models.Staff, error) {
	st, err := requireRow(ctx, s.store.Staff, id, "staff member")
	if err != nil {
		return st, err
	}
	return st, sameProperty("staff member", st.PropertyID, propertyID)
}

func (s *Service) requireSupplier(ctx context.Context, id, propertyID string) (models.Supplier, error) {
	sup, err := requireRow(ctx, s.store.Suppliers, id, "supplier")
	if err != nil {
		return sup, err
	}
	return sup, sameProperty("supplier", sup.PropertyID, propertyID)
}

func (s *Service) requireInventoryItem(ctx context.Context, id, propertyID string) (models.InventoryItem, error) {
	item, err := requireRow(ctx, s.store.InventoryItems, id, "inventory item")
	if err != nil {
		return item, err
	}
	return item, sameProperty("inventory item", item.PropertyID, propertyID)
}

// dependent is one registered downward relationship.
type dependent struct {
	relation string
	exists   func(ctx context.Context, id string) (bool, error)
}

func dependentOn[T any](table repository.Table[T], index, relation string, filter func(T) bool) dependent {
	return dependent{
		relation: relation,
		exists: func(ctx context.Context, id string) (bool, error) {
			return repository.Exists(ctx, table, repository.Query[T]{
				Index:  index,
				Value:  id,
				Order:  repository.Asc,
				Filter: filter,
			})
		},
	}
}

// Entity kinds with registered dependents.
const (
	kindProperty      = "property"
	kindRoomType      = "room type"
	kindRoom          = "room"
	kindGuest         = "guest"
	kindStaff         = "staff member"
	kindSupplier      = "supplier"
	kindInventoryItem = "inventory item"
	kindPurchaseOrder = "purchase order"
	kindMenuItem      = "menu item"
	kindUser          = "user"
	kindRole          = "role"
)

func openTask(t models.HousekeepingTask) bool {
	return t.Status == constants.TaskStatusPending || t.Status == constants.TaskStatusInProgress
}

func buildDependents(st *repository.Store) map[string][]dependent {
	return map[string][]dependent{
		kindRoom: {
			dependentOn(st.Reservations, repository.ByRoom, "active reservations",
				func(r models.Reservation) bool { return constants.IsActiveReservationStatus(r.Status) }),
			dependentOn(st.HousekeepingTasks, repository.ByRoom, "open housekeeping tasks", openTask),
		},
		kindGuest: {
			dependentOn(st.Reservations, repository.ByGuest, "reservations", nil),
		},
		kindInventoryItem: {
			dependentOn(st.InventoryTransactions, repository.ByInventoryItem, "inventory transactions", nil),
			dependentOn(st.PurchaseOrderLines, repository.ByInventoryItem, "purchase order lines", nil),
			dependentOn(st.RecipeLines, repository.ByInventoryItem, "recipe lines", nil),
		},
		kindSupplier: {
			dependentOn(st.InventoryItems, repository.BySupplier, "inventory items", nil),
			dependentOn(st.PurchaseOrders, repository.BySupplier, "purchase orders", nil),
		},
		kindRoomType: {
			dependentOn(st.Rooms, repository.ByRoomType, "rooms", nil),
		},
		kindStaff: {
			dependentOn(st.HousekeepingTasks, repository.ByStaff, "open housekeeping tasks", openTask),
		},
		kindPurchaseOrder: {
			dependentOn(st.PurchaseOrderLines, repository.ByPurchaseOrder, "purchase order lines", nil),
		},
		kindMenuItem: {
			dependentOn(st.Recipes, repository.ByMenuItem, "a recipe", nil),
		},
		kindUser: {
			dependentOn(st.UserRoles, repository.ByUser, "role assignments", nil),
		},
		kindRole: {
			dependentOn(st.UserRoles, repository.ByRole, "role assignments", nil),
		},
		kindProperty: {
			dependentOn(st.RoomTypes, repository.ByProperty, "room types", nil),
			dependentOn(st.Rooms, repository.ByProperty, "rooms", nil),
			dependentOn(st.RatePlans, repository.ByProperty, "rate plans", nil),
			dependentOn(st.Guests, repository.ByProperty, "guests", nil),
			dependentOn(st.Reservations, repository.ByProperty, "reservations", nil),
			dependentOn(st.Staff, repository.ByProperty, "staff", nil),
			dependentOn(st.HousekeepingTasks, repository.ByProperty, "housekeeping tasks", nil),
			dependentOn(st.Suppliers, repository.ByProperty, "suppliers", nil),
			dependentOn(st.InventoryItems, repository.ByProperty, "inventory items", nil),
			dependentOn(st.InventoryTransactions, repository.ByProperty, "inventory transactions", nil),
			dependentOn(st.PurchaseOrders, repository.ByProperty, "purchase orders", nil),
			dependentOn(st.FnbMenuItems, repository.ByProperty, "menu items", nil),
			dependentOn(st.UserRoles, repository.ByProperty, "role assignments", nil),
		},
	}
}

// refuseIfReferenced blocks deleting id while any registered dependent row
// points at it. The check is not atomic with the delete that follows.
func (s *Service) refuseIfReferenced(ctx context.Context, kind, id string) error {
	for _, dep := range s.dependents[kind] {
		found, err := dep.exists(ctx, id)
		if err != nil {
			return err
		}
		if found {
			return errors.Reference("cannot delete %s: it is referenced by %s", kind, dep.relation)
		}
	}
	return nil
}

// notFound names the entity in a NOT_FOUND error.
func notFound(kind string) error {
	return errors.NotFound("%s not found", kind)
}

// load fetches the target of an update or delete.
func load[T any](ctx context.Context, table repository.Table[T], id, kind string) (T, error) {
	row, err := table.Get(ctx, strings.TrimSpace(id))
	if stderrors.Is(err, repository.ErrNotFound) {
		return row, notFound(kind)
	}
	return row, err
}

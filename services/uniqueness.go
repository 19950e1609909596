package services

import (
	"context"

	"backoffice/errors"
	"backoffice/models"
	"backoffice/repository"
)

type record[T any] interface {
	*T
	models.Record
}

func rowID[T any, P record[T]](row T) string {
	return P(&row).GetID()
}

// checkUnique scans one scope (index == "" scans the whole table) for a row
// other than excludeID that matches. A match is a CONFLICT with message.
func checkUnique[T any, P record[T]](ctx context.Context, table repository.Table[T], index, scope, excludeID string, match func(T) bool, message string) error {
	taken, err := repository.Exists(ctx, table, repository.Query[T]{
		Index: index,
		Value: scope,
		Order: repository.Asc,
		Filter: func(row T) bool {
			return rowID[T, P](row) != excludeID && match(row)
		},
	})
	if err != nil {
		return err
	}
	if taken {
		return errors.Conflict("%s", message)
	}
	return nil
}

func (s *Service) checkPropertyUnique(ctx context.Context, p models.Property, excludeID string) error {
	st := s.store
	if err := checkUnique(ctx, st.Properties, "", "", excludeID,
		func(r models.Property) bool { return r.Name == p.Name },
		"property name already exists"); err != nil {
		return err
	}
	if p.Email == "" {
		return nil
	}
	return checkUnique(ctx, st.Properties, "", "", excludeID,
		func(r models.Property) bool { return r.Email == p.Email },
		"property email already exists")
}

func (s *Service) checkRoomTypeUnique(ctx context.Context, rt models.RoomType, excludeID string) error {
	return checkUnique(ctx, s.store.RoomTypes, repository.ByProperty, rt.PropertyID, excludeID,
		func(r models.RoomType) bool { return r.Name == rt.Name },
		"room type name already exists in this property")
}

func (s *Service) checkRoomUnique(ctx context.Context, room models.Room, excludeID string) error {
	return checkUnique(ctx, s.store.Rooms, repository.ByProperty, room.PropertyID, excludeID,
		func(r models.Room) bool { return r.RoomNumber == room.RoomNumber },
		"duplicate room number in this property")
}

// checkRatePlanUnique only applies among active plans: inactive plans with
// the same identity may coexist.
func (s *Service) checkRatePlanUnique(ctx context.Context, plan models.RatePlan, excludeID string) error {
	if !plan.IsActive {
		return nil
	}
	return checkUnique(ctx, s.store.RatePlans, repository.ByRoomType, plan.RoomTypeID, excludeID,
		func(r models.RatePlan) bool {
			return r.IsActive && r.PropertyID == plan.PropertyID && r.Name == plan.Name
		},
		"an active rate plan with this name already exists for the room type")
}

func (s *Service) checkGuestUnique(ctx context.Context, g models.Guest, excludeID string) error {
	if g.LoyaltyNumber == "" {
		return nil
	}
	return checkUnique(ctx, s.store.Guests, repository.ByProperty, g.PropertyID, excludeID,
		func(r models.Guest) bool { return r.LoyaltyNumber == g.LoyaltyNumber },
		"loyalty number already exists in this property")
}

func (s *Service) checkSupplierUnique(ctx context.Context, sup models.Supplier, excludeID string) error {
	st := s.store
	if err := checkUnique(ctx, st.Suppliers, repository.ByProperty, sup.PropertyID, excludeID,
		func(r models.Supplier) bool { return r.Name == sup.Name },
		"supplier name already exists in this property"); err != nil {
		return err
	}
	if sup.Email == "" {
		return nil
	}
	return checkUnique(ctx, st.Suppliers, repository.ByProperty, sup.PropertyID, excludeID,
		func(r models.Supplier) bool { return r.Email == sup.Email },
		"supplier email already exists in this property")
}

func (s *Service) checkInventoryItemUnique(ctx context.Context, item models.InventoryItem, excludeID string) error {
	return checkUnique(ctx, s.store.InventoryItems, repository.ByProperty, item.PropertyID, excludeID,
		func(r models.InventoryItem) bool { return r.SKU == item.SKU },
		"sku already exists in this property")
}

func (s *Service) checkPurchaseOrderUnique(ctx context.Context, po models.PurchaseOrder, excludeID string) error {
	return checkUnique(ctx, s.store.PurchaseOrders, repository.ByProperty, po.PropertyID, excludeID,
		func(r models.PurchaseOrder) bool { return r.OrderNumber == po.OrderNumber },
		"order number already exists in this property")
}

func (s *Service) checkMenuItemUnique(ctx context.Context, item models.FnbMenuItem, excludeID string) error {
	return checkUnique(ctx, s.store.FnbMenuItems, repository.ByProperty, item.PropertyID, excludeID,
		func(r models.FnbMenuItem) bool { return r.Name == item.Name },
		"menu item name already exists in this property")
}

// checkRecipeUnique keeps recipes 1:1 with menu items.
func (s *Service) checkRecipeUnique(ctx context.Context, recipe models.Recipe, excludeID string) error {
	return checkUnique(ctx, s.store.Recipes, repository.ByMenuItem, recipe.MenuItemID, excludeID,
		func(models.Recipe) bool { return true },
		"menu item already has a recipe")
}

func (s *Service) checkUserUnique(ctx context.Context, u models.User, excludeID string) error {
	return checkUnique(ctx, s.store.Users, "", "", excludeID,
		func(r models.User) bool { return r.Email == u.Email },
		"user email already exists")
}

func (s *Service) checkRoleUnique(ctx context.Context, role models.Role, excludeID string) error {
	return checkUnique(ctx, s.store.Roles, "", "", excludeID,
		func(r models.Role) bool { return r.Name == role.Name },
		"role name already exists")
}

func (s *Service) checkUserRoleUnique(ctx context.Context, ur models.UserRole, excludeID string) error {
	return checkUnique(ctx, s.store.UserRoles, repository.ByUser, ur.UserID, excludeID,
		func(r models.UserRole) bool { return r.RoleID == ur.RoleID && r.PropertyID == ur.PropertyID },
		"user already has this role at this property")
}

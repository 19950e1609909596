package services

import (
	"context"
	stderrors "errors"

	"backoffice/dto"
	"backoffice/models"
	"backoffice/repository"
)

// resolve follows a reference for presentation. A missing id, a missing row
// and a storage failure all resolve to nil; the failure is only logged.
func resolve[T any](ctx context.Context, s *Service, table repository.Table[T], id string) *T {
	if id == "" {
		return nil
	}
	row, err := table.Get(ctx, id)
	if err != nil {
		if !stderrors.Is(err, repository.ErrNotFound) {
			s.logger.Error("resolve %s %s: %v", table.Name(), id, err)
		}
		return nil
	}
	return &row
}

func resolveOptional[T any](ctx context.Context, s *Service, table repository.Table[T], id *string) *T {
	if id == nil {
		return nil
	}
	return resolve(ctx, s, table, *id)
}

// resolveAssignee treats assignedBy as a user id when one matches and as an
// opaque label otherwise.
func (s *Service) resolveAssignee(ctx context.Context, raw string) dto.Assignee {
	if raw == "" {
		return nil
	}
	if u := resolve(ctx, s, s.store.Users, raw); u != nil {
		return dto.Resolved(*u)
	}
	return dto.Unresolved(raw)
}

func (s *Service) roomView(ctx context.Context, room models.Room) dto.RoomView {
	return dto.RoomView{
		Room:     room,
		RoomType: resolve(ctx, s, s.store.RoomTypes, room.RoomTypeID),
	}
}

func (s *Service) ratePlanView(ctx context.Context, plan models.RatePlan) dto.RatePlanView {
	return dto.RatePlanView{
		RatePlan: plan,
		RoomType: resolve(ctx, s, s.store.RoomTypes, plan.RoomTypeID),
	}
}

func (s *Service) reservationView(ctx context.Context, r models.Reservation) dto.ReservationView {
	return dto.ReservationView{
		Reservation: r,
		Guest:       resolve(ctx, s, s.store.Guests, r.GuestID),
		Room:        resolve(ctx, s, s.store.Rooms, r.RoomID),
	}
}

func (s *Service) housekeepingTaskView(ctx context.Context, task models.HousekeepingTask) dto.HousekeepingTaskView {
	view := dto.HousekeepingTaskView{
		Task:       task,
		Staff:      resolveOptional(ctx, s, s.store.Staff, task.AssignedStaffID),
		AssignedBy: s.resolveAssignee(ctx, task.AssignedBy),
	}
	if room := resolve(ctx, s, s.store.Rooms, task.RoomID); room != nil {
		rv := s.roomView(ctx, *room)
		view.Room = &rv
	}
	return view
}

func (s *Service) inventoryItemView(ctx context.Context, item models.InventoryItem) dto.InventoryItemView {
	return dto.InventoryItemView{
		Item:     item,
		Supplier: resolveOptional(ctx, s, s.store.Suppliers, item.SupplierID),
	}
}

func (s *Service) purchaseOrderView(ctx context.Context, po models.PurchaseOrder) dto.PurchaseOrderView {
	return dto.PurchaseOrderView{
		Order:    po,
		Supplier: resolve(ctx, s, s.store.Suppliers, po.SupplierID),
	}
}

func (s *Service) purchaseOrderLineView(ctx context.Context, line models.PurchaseOrderLine) dto.PurchaseOrderLineView {
	return dto.PurchaseOrderLineView{
		Line:          line,
		InventoryItem: resolve(ctx, s, s.store.InventoryItems, line.InventoryItemID),
		PurchaseOrder: resolve(ctx, s, s.store.PurchaseOrders, line.PurchaseOrderID),
	}
}

func (s *Service) recipeLineView(ctx context.Context, line models.RecipeLine) dto.RecipeLineView {
	return dto.RecipeLineView{
		Line:          line,
		InventoryItem: resolve(ctx, s, s.store.InventoryItems, line.InventoryItemID),
	}
}

// recipeView attaches every line of the recipe. A failed line scan leaves
// Lines empty.
func (s *Service) recipeView(ctx context.Context, recipe models.Recipe) dto.RecipeView {
	view := dto.RecipeView{
		Recipe:   recipe,
		MenuItem: resolve(ctx, s, s.store.FnbMenuItems, recipe.MenuItemID),
		Lines:    []dto.RecipeLineView{},
	}
	lines, err := s.store.RecipeLines.Scan(ctx, repository.Query[models.RecipeLine]{
		Index: repository.ByRecipe,
		Value: recipe.ID,
		Order: repository.Asc,
	})
	if err != nil {
		s.logger.Error("resolve recipe lines %s: %v", recipe.ID, err)
		return view
	}
	for _, line := range lines {
		view.Lines = append(view.Lines, s.recipeLineView(ctx, line))
	}
	return view
}

func (s *Service) userRoleView(ctx context.Context, ur models.UserRole) dto.UserRoleView {
	return dto.UserRoleView{
		UserRole:   ur,
		User:       resolve(ctx, s, s.store.Users, ur.UserID),
		Role:       resolve(ctx, s, s.store.Roles, ur.RoleID),
		Property:   resolve(ctx, s, s.store.Properties, ur.PropertyID),
		AssignedBy: s.resolveAssignee(ctx, ur.AssignedBy),
	}
}

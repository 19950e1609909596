package services

import (
	"context"

	"backoffice/dto"
	"backoffice/models"
	"backoffice/repository"
	"backoffice/response"
	"backoffice/validator"
)

func (s *Service) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) response.Result[response.Empty] {
	return write(s, ctx, "createSupplier", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		sup := models.Supplier{
			PropertyID:  text(req.PropertyID),
			Name:        text(req.Name),
			ContactName: text(req.ContactName),
			Email:       text(req.Email),
			Phone:       text(req.Phone),
			Address:     req.Address,
			IsActive:    boolOr(req.IsActive, true),
		}
		if err := validator.Required("name", sup.Name); err != nil {
			return "", err
		}
		if _, err := s.requireProperty(ctx, sup.PropertyID); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("suppliers", sup.PropertyID), func() error {
			if err := s.checkSupplierUnique(ctx, sup, ""); err != nil {
				return err
			}
			created, err := s.store.Suppliers.Insert(ctx, sup)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applySupplierUpdate(sup *models.Supplier, req dto.UpdateSupplierRequest) {
	if req.Name != nil {
		sup.Name = *textPtr(req.Name)
	}
	if req.ContactName != nil {
		sup.ContactName = *textPtr(req.ContactName)
	}
	if req.Email != nil {
		sup.Email = *textPtr(req.Email)
	}
	if req.Phone != nil {
		sup.Phone = *textPtr(req.Phone)
	}
	if req.Address != nil {
		sup.Address = *req.Address
	}
	if req.IsActive != nil {
		sup.IsActive = *req.IsActive
	}
}

func (s *Service) UpdateSupplier(ctx context.Context, id string, req dto.UpdateSupplierRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateSupplier", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.Suppliers, id, kindSupplier)
		if err != nil {
			return "", err
		}
		merged := current
		applySupplierUpdate(&merged, req)
		if err := validator.Required("name", merged.Name); err != nil {
			return "", err
		}
		return "", s.withLock(ctx, scope("suppliers", current.PropertyID), func() error {
			if err := s.checkSupplierUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.Suppliers.Patch(ctx, current.ID, func(sup *models.Supplier) error {
				applySupplierUpdate(sup, req)
				return nil
			})
			return err
		})
	})
}

// DeleteSupplier refuses while inventory items or purchase orders reference
// the supplier.
func (s *Service) DeleteSupplier(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteSupplier", func(ctx context.Context) (string, error) {
		sup, err := load(ctx, s.store.Suppliers, id, kindSupplier)
		if err != nil {
			return "", err
		}
		if err := s.refuseIfReferenced(ctx, kindSupplier, sup.ID); err != nil {
			return "", err
		}
		return "", s.store.Suppliers.Delete(ctx, sup.ID)
	})
}

func (s *Service) GetSupplier(ctx context.Context, id string) response.Result[*models.Supplier] {
	return read(s, ctx, "getSupplier", func(ctx context.Context) (*models.Supplier, error) {
		return repository.Find(ctx, s.store.Suppliers, text(id))
	})
}

func (s *Service) ListSuppliers(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[models.Supplier]] {
	return read(s, ctx, "listSuppliers", func(ctx context.Context) (dto.Page[models.Supplier], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[models.Supplier]{}, err
		}
		filter := searchFilter(q.term, func(sup models.Supplier) []string {
			return []string{sup.Name, sup.ContactName, sup.Email}
		})
		return paginate[models.Supplier](ctx, s.store.Suppliers, repository.ByProperty, text(propertyID), q, filter, identity[models.Supplier])
	})
}

func (s *Service) CreateInventoryItem(ctx context.Context, req dto.CreateInventoryItemRequest) response.Result[response.Empty] {
	return write(s, ctx, "createInventoryItem", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		item := models.InventoryItem{
			PropertyID:      text(req.PropertyID),
			SupplierID:      optionalID(req.SupplierID),
			SKU:             text(req.SKU),
			Name:            text(req.Name),
			Category:        text(req.Category),
			Unit:            text(req.Unit),
			CurrentQuantity: req.CurrentQuantity,
			ReorderPoint:    req.ReorderPoint,
			UnitCost:        req.UnitCost,
			LastCostUpdate:  s.now(),
		}
		if err := validator.Required("sku", item.SKU); err != nil {
			return "", err
		}
		if err := validator.Required("name", item.Name); err != nil {
			return "", err
		}
		if _, err := s.requireProperty(ctx, item.PropertyID); err != nil {
			return "", err
		}
		if item.SupplierID != nil {
			if _, err := s.requireSupplier(ctx, *item.SupplierID, item.PropertyID); err != nil {
				return "", err
			}
		}
		var id string
		err := s.withLock(ctx, scope("inventory_items", item.PropertyID), func() error {
			if err := s.checkInventoryItemUnique(ctx, item, ""); err != nil {
				return err
			}
			created, err := s.store.InventoryItems.Insert(ctx, item)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applyInventoryItemUpdate(item *models.InventoryItem, req dto.UpdateInventoryItemRequest, now int64) {
	if req.SupplierID != nil {
		item.SupplierID = optionalID(*req.SupplierID)
	}
	if req.SKU != nil {
		item.SKU = *textPtr(req.SKU)
	}
	if req.Name != nil {
		item.Name = *textPtr(req.Name)
	}
	if req.Category != nil {
		item.Category = *textPtr(req.Category)
	}
	if req.Unit != nil {
		item.Unit = *textPtr(req.Unit)
	}
	if req.ReorderPoint != nil {
		item.ReorderPoint = *req.ReorderPoint
	}
	if req.UnitCost != nil && *req.UnitCost != item.UnitCost {
		item.UnitCost = *req.UnitCost
		item.LastCostUpdate = now
	}
}

func (s *Service) UpdateInventoryItem(ctx context.Context, id string, req dto.UpdateInventoryItemRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateInventoryItem", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.InventoryItems, id, kindInventoryItem)
		if err != nil {
			return "", err
		}
		now := s.now()
		merged := current
		applyInventoryItemUpdate(&merged, req, now)
		if err := validator.Required("sku", merged.SKU); err != nil {
			return "", err
		}
		if err := validator.Required("name", merged.Name); err != nil {
			return "", err
		}
		if merged.SupplierID != nil && (current.SupplierID == nil || *merged.SupplierID != *current.SupplierID) {
			if _, err := s.requireSupplier(ctx, *merged.SupplierID, current.PropertyID); err != nil {
				return "", err
			}
		}
		return "", s.withLock(ctx, scope("inventory_items", current.PropertyID), func() error {
			if err := s.checkInventoryItemUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.InventoryItems.Patch(ctx, current.ID, func(item *models.InventoryItem) error {
				applyInventoryItemUpdate(item, req, now)
				return nil
			})
			return err
		})
	})
}

// DeleteInventoryItem refuses while transactions, purchase order lines or
// recipe lines reference the item.
func (s *Service) DeleteInventoryItem(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteInventoryItem", func(ctx context.Context) (string, error) {
		item, err := load(ctx, s.store.InventoryItems, id, kindInventoryItem)
		if err != nil {
			return "", err
		}
		if err := s.refuseIfReferenced(ctx, kindInventoryItem, item.ID); err != nil {
			return "", err
		}
		return "", s.store.InventoryItems.Delete(ctx, item.ID)
	})
}

func (s *Service) GetInventoryItem(ctx context.Context, id string) response.Result[*dto.InventoryItemView] {
	return read(s, ctx, "getInventoryItem", func(ctx context.Context) (*dto.InventoryItemView, error) {
		item, err := repository.Find(ctx, s.store.InventoryItems, text(id))
		if err != nil || item == nil {
			return nil, err
		}
		view := s.inventoryItemView(ctx, *item)
		return &view, nil
	})
}

// ListInventoryItems: search matches sku, name and category.
func (s *Service) ListInventoryItems(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[dto.InventoryItemView]] {
	return read(s, ctx, "listInventoryItems", func(ctx context.Context) (dto.Page[dto.InventoryItemView], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[dto.InventoryItemView]{}, err
		}
		filter := searchFilter(q.term, func(item models.InventoryItem) []string {
			return []string{item.SKU, item.Name, item.Category}
		})
		return paginate[models.InventoryItem](ctx, s.store.InventoryItems, repository.ByProperty, text(propertyID), q, filter,
			func(item models.InventoryItem) dto.InventoryItemView { return s.inventoryItemView(ctx, item) })
	})
}

// GetLowStockItems lists every item of a property at or below its reorder
// point, oldest first.
func (s *Service) GetLowStockItems(ctx context.Context, propertyID string) response.Result[[]dto.InventoryItemView] {
	return read(s, ctx, "getLowStockItems", func(ctx context.Context) ([]dto.InventoryItemView, error) {
		items, err := s.store.InventoryItems.Scan(ctx, repository.Query[models.InventoryItem]{
			Index:  repository.ByProperty,
			Value:  text(propertyID),
			Order:  repository.Asc,
			Filter: func(item models.InventoryItem) bool { return item.NeedsReorder() },
		})
		if err != nil {
			return nil, err
		}
		out := make([]dto.InventoryItemView, 0, len(items))
		for _, item := range items {
			out = append(out, s.inventoryItemView(ctx, item))
		}
		return out, nil
	})
}

package services

import (
	"context"

	"backoffice/constants"
	"backoffice/dto"
	"backoffice/models"
	"backoffice/repository"
	"backoffice/response"
	"backoffice/validator"
)

func (s *Service) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) response.Result[response.Empty] {
	return write(s, ctx, "createPurchaseOrder", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		po := models.PurchaseOrder{
			PropertyID:   text(req.PropertyID),
			SupplierID:   text(req.SupplierID),
			OrderNumber:  text(req.OrderNumber),
			Status:       req.Status,
			OrderDate:    req.OrderDate,
			ExpectedDate: req.ExpectedDate,
			TotalAmount:  req.TotalAmount,
			Notes:        req.Notes,
		}
		if po.Status == "" {
			po.Status = constants.PurchaseOrderDraft
		}
		if po.OrderDate == 0 {
			po.OrderDate = s.now()
		}
		if err := validator.Required("orderNumber", po.OrderNumber); err != nil {
			return "", err
		}
		if _, err := s.requireProperty(ctx, po.PropertyID); err != nil {
			return "", err
		}
		if _, err := s.requireSupplier(ctx, po.SupplierID, po.PropertyID); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("purchase_orders", po.PropertyID), func() error {
			if err := s.checkPurchaseOrderUnique(ctx, po, ""); err != nil {
				return err
			}
			created, err := s.store.PurchaseOrders.Insert(ctx, po)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applyPurchaseOrderUpdate(po *models.PurchaseOrder, req dto.UpdatePurchaseOrderRequest) {
	if req.SupplierID != nil {
		po.SupplierID = *textPtr(req.SupplierID)
	}
	if req.OrderNumber != nil {
		po.OrderNumber = *textPtr(req.OrderNumber)
	}
	if req.Status != nil {
		po.Status = *req.Status
	}
	if req.OrderDate != nil {
		po.OrderDate = *req.OrderDate
	}
	if req.ExpectedDate != nil {
		po.ExpectedDate = int64Ptr(*req.ExpectedDate)
	}
	if req.TotalAmount != nil {
		po.TotalAmount = *req.TotalAmount
	}
	if req.Notes != nil {
		po.Notes = *req.Notes
	}
}

func (s *Service) UpdatePurchaseOrder(ctx context.Context, id string, req dto.UpdatePurchaseOrderRequest) response.Result[response.Empty] {
	return write(s, ctx, "updatePurchaseOrder", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.PurchaseOrders, id, kindPurchaseOrder)
		if err != nil {
			return "", err
		}
		merged := current
		applyPurchaseOrderUpdate(&merged, req)
		if err := validator.Required("orderNumber", merged.OrderNumber); err != nil {
			return "", err
		}
		if merged.SupplierID != current.SupplierID {
			if _, err := s.requireSupplier(ctx, merged.SupplierID, current.PropertyID); err != nil {
				return "", err
			}
		}
		return "", s.withLock(ctx, scope("purchase_orders", current.PropertyID), func() error {
			if err := s.checkPurchaseOrderUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.PurchaseOrders.Patch(ctx, current.ID, func(po *models.PurchaseOrder) error {
				applyPurchaseOrderUpdate(po, req)
				return nil
			})
			return err
		})
	})
}

// DeletePurchaseOrder refuses while the order still has lines.
func (s *Service) DeletePurchaseOrder(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deletePurchaseOrder", func(ctx context.Context) (string, error) {
		po, err := load(ctx, s.store.PurchaseOrders, id, kindPurchaseOrder)
		if err != nil {
			return "", err
		}
		if err := s.refuseIfReferenced(ctx, kindPurchaseOrder, po.ID); err != nil {
			return "", err
		}
		return "", s.store.PurchaseOrders.Delete(ctx, po.ID)
	})
}

func (s *Service) GetPurchaseOrder(ctx context.Context, id string) response.Result[*dto.PurchaseOrderView] {
	return read(s, ctx, "getPurchaseOrder", func(ctx context.Context) (*dto.PurchaseOrderView, error) {
		po, err := repository.Find(ctx, s.store.PurchaseOrders, text(id))
		if err != nil || po == nil {
			return nil, err
		}
		view := s.purchaseOrderView(ctx, *po)
		return &view, nil
	})
}

func (s *Service) ListPurchaseOrders(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[dto.PurchaseOrderView]] {
	return read(s, ctx, "listPurchaseOrders", func(ctx context.Context) (dto.Page[dto.PurchaseOrderView], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[dto.PurchaseOrderView]{}, err
		}
		filter := searchFilter(q.term, func(po models.PurchaseOrder) []string { return []string{po.OrderNumber, po.Notes} })
		return paginate[models.PurchaseOrder](ctx, s.store.PurchaseOrders, repository.ByProperty, text(propertyID), q, filter,
			func(po models.PurchaseOrder) dto.PurchaseOrderView { return s.purchaseOrderView(ctx, po) })
	})
}

// CreatePurchaseOrderLine requires the item to belong to the order's
// property. TotalPrice is stored as supplied.
func (s *Service) CreatePurchaseOrderLine(ctx context.Context, req dto.CreatePurchaseOrderLineRequest) response.Result[response.Empty] {
	return write(s, ctx, "createPurchaseOrderLine", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		line := models.PurchaseOrderLine{
			PurchaseOrderID:  text(req.PurchaseOrderID),
			InventoryItemID:  text(req.InventoryItemID),
			Quantity:         req.Quantity,
			UnitPrice:        req.UnitPrice,
			TotalPrice:       req.TotalPrice,
			ReceivedQuantity: req.ReceivedQuantity,
		}
		po, err := requireRow(ctx, s.store.PurchaseOrders, line.PurchaseOrderID, "purchase order")
		if err != nil {
			return "", err
		}
		if _, err := s.requireInventoryItem(ctx, line.InventoryItemID, po.PropertyID); err != nil {
			return "", err
		}
		created, err := s.store.PurchaseOrderLines.Insert(ctx, line)
		return created.ID, err
	})
}

func applyPurchaseOrderLineUpdate(line *models.PurchaseOrderLine, req dto.UpdatePurchaseOrderLineRequest) {
	if req.InventoryItemID != nil {
		line.InventoryItemID = *textPtr(req.InventoryItemID)
	}
	if req.Quantity != nil {
		line.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		line.UnitPrice = *req.UnitPrice
	}
	if req.TotalPrice != nil {
		line.TotalPrice = *req.TotalPrice
	}
	if req.ReceivedQuantity != nil {
		v := *req.ReceivedQuantity
		line.ReceivedQuantity = &v
	}
}

func (s *Service) UpdatePurchaseOrderLine(ctx context.Context, id string, req dto.UpdatePurchaseOrderLineRequest) response.Result[response.Empty] {
	return write(s, ctx, "updatePurchaseOrderLine", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.PurchaseOrderLines, id, "purchase order line")
		if err != nil {
			return "", err
		}
		merged := current
		applyPurchaseOrderLineUpdate(&merged, req)
		if merged.InventoryItemID != current.InventoryItemID {
			po, err := requireRow(ctx, s.store.PurchaseOrders, current.PurchaseOrderID, "purchase order")
			if err != nil {
				return "", err
			}
			if _, err := s.requireInventoryItem(ctx, merged.InventoryItemID, po.PropertyID); err != nil {
				return "", err
			}
		}
		_, err = s.store.PurchaseOrderLines.Patch(ctx, current.ID, func(line *models.PurchaseOrderLine) error {
			applyPurchaseOrderLineUpdate(line, req)
			return nil
		})
		return "", err
	})
}

func (s *Service) DeletePurchaseOrderLine(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deletePurchaseOrderLine", func(ctx context.Context) (string, error) {
		line, err := load(ctx, s.store.PurchaseOrderLines, id, "purchase order line")
		if err != nil {
			return "", err
		}
		return "", s.store.PurchaseOrderLines.Delete(ctx, line.ID)
	})
}

func (s *Service) GetPurchaseOrderLine(ctx context.Context, id string) response.Result[*dto.PurchaseOrderLineView] {
	return read(s, ctx, "getPurchaseOrderLine", func(ctx context.Context) (*dto.PurchaseOrderLineView, error) {
		line, err := repository.Find(ctx, s.store.PurchaseOrderLines, text(id))
		if err != nil || line == nil {
			return nil, err
		}
		view := s.purchaseOrderLineView(ctx, *line)
		return &view, nil
	})
}

// ListPurchaseOrderLines pages through the lines of one purchase order.
func (s *Service) ListPurchaseOrderLines(ctx context.Context, purchaseOrderID string, req dto.PageRequest) response.Result[dto.Page[dto.PurchaseOrderLineView]] {
	return read(s, ctx, "listPurchaseOrderLines", func(ctx context.Context) (dto.Page[dto.PurchaseOrderLineView], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[dto.PurchaseOrderLineView]{}, err
		}
		return paginate[models.PurchaseOrderLine](ctx, s.store.PurchaseOrderLines, repository.ByPurchaseOrder, text(purchaseOrderID), q, nil,
			func(line models.PurchaseOrderLine) dto.PurchaseOrderLineView { return s.purchaseOrderLineView(ctx, line) })
	})
}

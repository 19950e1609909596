package services

import (
	"context"

	"backoffice/constants"
	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"
	"backoffice/repository"
	"backoffice/response"
	"backoffice/validator"
)

// stockDelta is the change a transaction makes to the item's quantity.
func stockDelta(txType string, quantity float64) (float64, error) {
	switch txType {
	case constants.InventoryTxReceipt:
		if quantity <= 0 {
			return 0, errors.Validation("quantity must be positive for a receipt")
		}
		return quantity, nil
	case constants.InventoryTxIssue, constants.InventoryTxWaste:
		if quantity <= 0 {
			return 0, errors.Validation("quantity must be positive for %s", txType)
		}
		return -quantity, nil
	case constants.InventoryTxAdjustment:
		if quantity == 0 {
			return 0, errors.Validation("adjustment quantity must not be zero")
		}
		return quantity, nil
	}
	return 0, errors.Validation("unknown transaction type %q", txType)
}

// moveStock applies delta to the item inside its atomic patch. Stock never
// goes below zero.
func moveStock(ctx context.Context, st *repository.Store, itemID string, delta float64, cost *float64, now int64) error {
	_, err := st.InventoryItems.Patch(ctx, itemID, func(item *models.InventoryItem) error {
		next := item.CurrentQuantity + delta
		if next < 0 {
			return errors.Conflict("insufficient stock: %g %s on hand", item.CurrentQuantity, item.Unit)
		}
		item.CurrentQuantity = next
		if cost != nil {
			item.UnitCost = *cost
			item.LastCostUpdate = now
		}
		return nil
	})
	return err
}

// CreateInventoryTransaction records a stock movement and adjusts the item.
// A receipt carrying a unit cost also updates the item's cost. On a store
// without transactions the item change is reverted if the ledger insert
// fails.
func (s *Service) CreateInventoryTransaction(ctx context.Context, req dto.CreateInventoryTransactionRequest) response.Result[response.Empty] {
	return write(s, ctx, "createInventoryTransaction", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		delta, err := stockDelta(req.Type, req.Quantity)
		if err != nil {
			return "", err
		}
		tx := models.InventoryTransaction{
			PropertyID:      text(req.PropertyID),
			InventoryItemID: text(req.InventoryItemID),
			Type:            req.Type,
			Quantity:        req.Quantity,
			UnitCost:        req.UnitCost,
			Reference:       text(req.Reference),
			Notes:           req.Notes,
		}
		if _, err := s.requireProperty(ctx, tx.PropertyID); err != nil {
			return "", err
		}
		if _, err := s.requireInventoryItem(ctx, tx.InventoryItemID, tx.PropertyID); err != nil {
			return "", err
		}
		var cost *float64
		if tx.Type == constants.InventoryTxReceipt {
			cost = tx.UnitCost
		}

		var id string
		err = s.store.RunInTransaction(ctx, func(st *repository.Store) error {
			now := s.now()
			if err := moveStock(ctx, st, tx.InventoryItemID, delta, cost, now); err != nil {
				return err
			}
			created, err := st.InventoryTransactions.Insert(ctx, tx)
			if err != nil {
				if !st.SupportsTransactions() {
					s.revertStock(ctx, st, tx.InventoryItemID, delta)
				}
				return err
			}
			id = created.ID
			return nil
		})
		return id, err
	})
}

func (s *Service) revertStock(ctx context.Context, st *repository.Store, itemID string, delta float64) {
	_, err := st.InventoryItems.Patch(ctx, itemID, func(item *models.InventoryItem) error {
		item.CurrentQuantity -= delta
		return nil
	})
	if err != nil {
		s.logger.Error("revert stock of %s by %g: %v", itemID, delta, err)
	}
}

// UpdateInventoryTransaction only edits reference and notes.
func (s *Service) UpdateInventoryTransaction(ctx context.Context, id string, req dto.UpdateInventoryTransactionRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateInventoryTransaction", func(ctx context.Context) (string, error) {
		current, err := load(ctx, s.store.InventoryTransactions, id, "inventory transaction")
		if err != nil {
			return "", err
		}
		_, err = s.store.InventoryTransactions.Patch(ctx, current.ID, func(tx *models.InventoryTransaction) error {
			if req.Reference != nil {
				tx.Reference = *textPtr(req.Reference)
			}
			if req.Notes != nil {
				tx.Notes = *req.Notes
			}
			return nil
		})
		return "", err
	})
}

// DeleteInventoryTransaction removes a ledger entry and reverses its effect
// on the item's quantity. The item's cost is left as is.
func (s *Service) DeleteInventoryTransaction(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteInventoryTransaction", func(ctx context.Context) (string, error) {
		tx, err := load(ctx, s.store.InventoryTransactions, id, "inventory transaction")
		if err != nil {
			return "", err
		}
		delta, err := stockDelta(tx.Type, tx.Quantity)
		if err != nil {
			return "", err
		}
		return "", s.store.RunInTransaction(ctx, func(st *repository.Store) error {
			if err := moveStock(ctx, st, tx.InventoryItemID, -delta, nil, s.now()); err != nil {
				return err
			}
			if err := st.InventoryTransactions.Delete(ctx, tx.ID); err != nil {
				if !st.SupportsTransactions() {
					s.revertStock(ctx, st, tx.InventoryItemID, -delta)
				}
				return err
			}
			return nil
		})
	})
}

func (s *Service) GetInventoryTransaction(ctx context.Context, id string) response.Result[*models.InventoryTransaction] {
	return read(s, ctx, "getInventoryTransaction", func(ctx context.Context) (*models.InventoryTransaction, error) {
		return repository.Find(ctx, s.store.InventoryTransactions, text(id))
	})
}

func (s *Service) ListInventoryTransactions(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[models.InventoryTransaction]] {
	return read(s, ctx, "listInventoryTransactions", func(ctx context.Context) (dto.Page[models.InventoryTransaction], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[models.InventoryTransaction]{}, err
		}
		return paginate[models.InventoryTransaction](ctx, s.store.InventoryTransactions, repository.ByProperty, text(propertyID), q, nil, identity[models.InventoryTransaction])
	})
}

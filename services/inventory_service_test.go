package services

import (
	stderrors "errors"
	"testing"
	"time"

	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemQuantity(t *testing.T, f *fixture, id string) float64 {
	t.Helper()
	view := succeeded(t, f.svc.GetInventoryItem(f.ctx, id))
	require.NotNil(t, view)
	return view.Item.CurrentQuantity
}

func TestDuplicateSKUInProperty(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	f.item(p, "TOWEL-01", 10, 2)

	res := f.svc.CreateInventoryItem(f.ctx, dto.CreateInventoryItemRequest{PropertyID: p, SKU: "TOWEL-01", Name: "Towel"})
	assert.Equal(t, "sku already exists in this property", failed(t, res, errors.ErrCodeConflict))

	other := f.property("B")
	f.item(other, "TOWEL-01", 10, 2)
}

func TestInventoryTransactionsMoveStock(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	item := f.item(p, "SOAP", 10, 4)

	f.clock.Advance(time.Hour)
	receipt := created(t, f.svc.CreateInventoryTransaction(f.ctx, dto.CreateInventoryTransactionRequest{
		PropertyID: p, InventoryItemID: item, Type: "receipt", Quantity: 5, UnitCost: ptr(2.5), Reference: "PO-1",
	}))
	view := succeeded(t, f.svc.GetInventoryItem(f.ctx, item))
	assert.Equal(t, 15.0, view.Item.CurrentQuantity)
	assert.Equal(t, 2.5, view.Item.UnitCost)
	assert.Equal(t, f.clock.Now().UnixMilli(), view.Item.LastCostUpdate)

	created(t, f.svc.CreateInventoryTransaction(f.ctx, dto.CreateInventoryTransactionRequest{
		PropertyID: p, InventoryItemID: item, Type: "issue", Quantity: 12,
	}))
	assert.Equal(t, 3.0, itemQuantity(t, f, item))

	created(t, f.svc.CreateInventoryTransaction(f.ctx, dto.CreateInventoryTransactionRequest{
		PropertyID: p, InventoryItemID: item, Type: "adjustment", Quantity: -1,
	}))
	assert.Equal(t, 2.0, itemQuantity(t, f, item))

	// Reversing the receipt would take stock below zero.
	failed(t, f.svc.DeleteInventoryTransaction(f.ctx, receipt), errors.ErrCodeConflict)
	assert.Equal(t, 2.0, itemQuantity(t, f, item))
}

func TestIssueBeyondStockIsRejected(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	item := f.item(p, "SOAP", 3, 1)

	res := f.svc.CreateInventoryTransaction(f.ctx, dto.CreateInventoryTransactionRequest{
		PropertyID: p, InventoryItemID: item, Type: "waste", Quantity: 4,
	})
	assert.Contains(t, failed(t, res, errors.ErrCodeConflict), "insufficient stock")
	assert.Equal(t, 3.0, itemQuantity(t, f, item))

	page := succeeded(t, f.svc.ListInventoryTransactions(f.ctx, p, dto.PageRequest{}))
	assert.Empty(t, page.Items)
}

func TestDeleteInventoryTransactionReversesStock(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	item := f.item(p, "SOAP", 10, 1)
	issue := created(t, f.svc.CreateInventoryTransaction(f.ctx, dto.CreateInventoryTransactionRequest{
		PropertyID: p, InventoryItemID: item, Type: "issue", Quantity: 4,
	}))
	assert.Equal(t, 6.0, itemQuantity(t, f, item))

	require.True(t, f.svc.DeleteInventoryTransaction(f.ctx, issue).Success)
	assert.Equal(t, 10.0, itemQuantity(t, f, item))
}

func TestFailedLedgerInsertRevertsStock(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	item := f.item(p, "SOAP", 10, 1)
	f.store.InventoryTransactions = failingTable[models.InventoryTransaction]{
		Table: f.store.InventoryTransactions,
		err:   stderrors.New("disk full"),
	}

	res := f.svc.CreateInventoryTransaction(f.ctx, dto.CreateInventoryTransactionRequest{
		PropertyID: p, InventoryItemID: item, Type: "receipt", Quantity: 5,
	})
	assert.Equal(t, errors.GenericFailureMessage, failed(t, res, errors.ErrCodeDBError))
	assert.Equal(t, 10.0, itemQuantity(t, f, item))
}

func TestInventoryItemDeleteGuardedByLedger(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	item := f.item(p, "SOAP", 10, 1)
	created(t, f.svc.CreateInventoryTransaction(f.ctx, dto.CreateInventoryTransactionRequest{
		PropertyID: p, InventoryItemID: item, Type: "issue", Quantity: 1,
	}))

	assert.Contains(t, failed(t, f.svc.DeleteInventoryItem(f.ctx, item), errors.ErrCodeReference), "inventory transactions")
}

func TestLowStockItems(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	low := f.item(p, "LOW", 2, 5)
	f.item(p, "OK", 20, 5)
	edge := f.item(p, "EDGE", 5, 5)

	items := succeeded(t, f.svc.GetLowStockItems(f.ctx, p))
	require.Len(t, items, 2)
	assert.Equal(t, low, items[0].Item.ID)
	assert.Equal(t, edge, items[1].Item.ID)
}

func TestSupplierScopedToProperty(t *testing.T) {
	f := newFixture(t)
	a := f.property("A")
	b := f.property("B")
	sup := created(t, f.svc.CreateSupplier(f.ctx, dto.CreateSupplierRequest{PropertyID: b, Name: "Linen Co"}))

	res := f.svc.CreateInventoryItem(f.ctx, dto.CreateInventoryItemRequest{PropertyID: a, SupplierID: sup, SKU: "X", Name: "X"})
	assert.Equal(t, "supplier belongs to another property", failed(t, res, errors.ErrCodeReference))

	item := created(t, f.svc.CreateInventoryItem(f.ctx, dto.CreateInventoryItemRequest{PropertyID: b, SupplierID: sup, SKU: "X", Name: "X"}))
	view := succeeded(t, f.svc.GetInventoryItem(f.ctx, item))
	require.NotNil(t, view.Supplier)
	assert.Equal(t, "Linen Co", view.Supplier.Name)

	assert.Contains(t, failed(t, f.svc.DeleteSupplier(f.ctx, sup), errors.ErrCodeReference), "inventory items")
}

func TestPurchaseOrderLines(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	sup := created(t, f.svc.CreateSupplier(f.ctx, dto.CreateSupplierRequest{PropertyID: p, Name: "Linen Co"}))
	item := f.item(p, "SHEET", 0, 10)
	po := created(t, f.svc.CreatePurchaseOrder(f.ctx, dto.CreatePurchaseOrderRequest{PropertyID: p, SupplierID: sup, OrderNumber: "PO-1"}))

	failed(t, f.svc.CreatePurchaseOrder(f.ctx, dto.CreatePurchaseOrderRequest{PropertyID: p, SupplierID: sup, OrderNumber: "PO-1"}), errors.ErrCodeConflict)

	line := created(t, f.svc.CreatePurchaseOrderLine(f.ctx, dto.CreatePurchaseOrderLineRequest{
		PurchaseOrderID: po, InventoryItemID: item, Quantity: 20, UnitPrice: 3, TotalPrice: 60,
	}))

	order := succeeded(t, f.svc.GetPurchaseOrder(f.ctx, po))
	assert.Equal(t, "draft", order.Order.Status)
	assert.Equal(t, f.clock.Now().UnixMilli(), order.Order.OrderDate)

	lines := succeeded(t, f.svc.ListPurchaseOrderLines(f.ctx, po, dto.PageRequest{}))
	require.Len(t, lines.Items, 1)
	require.NotNil(t, lines.Items[0].InventoryItem)
	assert.Equal(t, "SHEET", lines.Items[0].InventoryItem.SKU)

	assert.Contains(t, failed(t, f.svc.DeletePurchaseOrder(f.ctx, po), errors.ErrCodeReference), "purchase order lines")
	require.True(t, f.svc.DeletePurchaseOrderLine(f.ctx, line).Success)
	assert.True(t, f.svc.DeletePurchaseOrder(f.ctx, po).Success)
}

func TestPurchasingDeleteGuards(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	sup := created(t, f.svc.CreateSupplier(f.ctx, dto.CreateSupplierRequest{PropertyID: p, Name: "Linen Co"}))
	item := f.item(p, "SHEET", 0, 10)
	po := created(t, f.svc.CreatePurchaseOrder(f.ctx, dto.CreatePurchaseOrderRequest{PropertyID: p, SupplierID: sup, OrderNumber: "PO-7"}))
	line := created(t, f.svc.CreatePurchaseOrderLine(f.ctx, dto.CreatePurchaseOrderLineRequest{
		PurchaseOrderID: po, InventoryItemID: item, Quantity: 4, UnitPrice: 3, TotalPrice: 12,
	}))

	assert.Contains(t, failed(t, f.svc.DeleteInventoryItem(f.ctx, item), errors.ErrCodeReference), "purchase order lines")
	assert.Contains(t, failed(t, f.svc.DeleteSupplier(f.ctx, sup), errors.ErrCodeReference), "purchase orders")

	require.True(t, f.svc.DeletePurchaseOrderLine(f.ctx, line).Success)
	require.True(t, f.svc.DeleteInventoryItem(f.ctx, item).Success)
	assert.Nil(t, succeeded(t, f.svc.GetInventoryItem(f.ctx, item)))

	require.True(t, f.svc.DeletePurchaseOrder(f.ctx, po).Success)
	require.True(t, f.svc.DeleteSupplier(f.ctx, sup).Success)
	assert.Nil(t, succeeded(t, f.svc.GetSupplier(f.ctx, sup)))
}

func TestDeleteUnreferencedSupplierAndItem(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	sup := created(t, f.svc.CreateSupplier(f.ctx, dto.CreateSupplierRequest{PropertyID: p, Name: "Linen Co"}))
	item := f.item(p, "SOAP", 3, 1)

	assert.True(t, f.svc.DeleteSupplier(f.ctx, sup).Success)
	assert.True(t, f.svc.DeleteInventoryItem(f.ctx, item).Success)
	failed(t, f.svc.DeleteSupplier(f.ctx, sup), errors.ErrCodeNotFound)
}

package controllers

import (
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) CreateSupplier(c *gin.Context) {
	create(c, ctl.svc.CreateSupplier)
}

func (ctl *Controller) UpdateSupplier(c *gin.Context) {
	update(c, ctl.svc.UpdateSupplier)
}

func (ctl *Controller) DeleteSupplier(c *gin.Context) {
	byID(c, ctl.svc.DeleteSupplier)
}

func (ctl *Controller) GetSupplier(c *gin.Context) {
	byID(c, ctl.svc.GetSupplier)
}

func (ctl *Controller) ListSuppliers(c *gin.Context) {
	list(c, ctl.svc.ListSuppliers)
}

func (ctl *Controller) CreateInventoryItem(c *gin.Context) {
	create(c, ctl.svc.CreateInventoryItem)
}

func (ctl *Controller) UpdateInventoryItem(c *gin.Context) {
	update(c, ctl.svc.UpdateInventoryItem)
}

func (ctl *Controller) DeleteInventoryItem(c *gin.Context) {
	byID(c, ctl.svc.DeleteInventoryItem)
}

func (ctl *Controller) GetInventoryItem(c *gin.Context) {
	byID(c, ctl.svc.GetInventoryItem)
}

func (ctl *Controller) ListInventoryItems(c *gin.Context) {
	list(c, ctl.svc.ListInventoryItems)
}

// GetLowStockItems godoc
// @Summary      Items at or below their reorder point
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  response.Result[[]dto.InventoryItemView]
// @Router       /properties/{id}/low-stock [get]
func (ctl *Controller) GetLowStockItems(c *gin.Context) {
	byID(c, ctl.svc.GetLowStockItems)
}

// CreateInventoryTransaction godoc
// @Summary      Record a stock movement
// @Description  Receipts add stock, issues and waste remove it, adjustments apply a signed quantity.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateInventoryTransactionRequest  true  "Movement"
// @Success      201   {object}  response.Result[response.Empty]
// @Failure      409   {object}  response.Result[response.Empty]
// @Router       /inventory-transactions [post]
func (ctl *Controller) CreateInventoryTransaction(c *gin.Context) {
	create(c, ctl.svc.CreateInventoryTransaction)
}

func (ctl *Controller) UpdateInventoryTransaction(c *gin.Context) {
	update(c, ctl.svc.UpdateInventoryTransaction)
}

func (ctl *Controller) DeleteInventoryTransaction(c *gin.Context) {
	byID(c, ctl.svc.DeleteInventoryTransaction)
}

func (ctl *Controller) GetInventoryTransaction(c *gin.Context) {
	byID(c, ctl.svc.GetInventoryTransaction)
}

func (ctl *Controller) ListInventoryTransactions(c *gin.Context) {
	list(c, ctl.svc.ListInventoryTransactions)
}

func (ctl *Controller) CreatePurchaseOrder(c *gin.Context) {
	create(c, ctl.svc.CreatePurchaseOrder)
}

func (ctl *Controller) UpdatePurchaseOrder(c *gin.Context) {
	update(c, ctl.svc.UpdatePurchaseOrder)
}

func (ctl *Controller) DeletePurchaseOrder(c *gin.Context) {
	byID(c, ctl.svc.DeletePurchaseOrder)
}

func (ctl *Controller) GetPurchaseOrder(c *gin.Context) {
	byID(c, ctl.svc.GetPurchaseOrder)
}

func (ctl *Controller) ListPurchaseOrders(c *gin.Context) {
	list(c, ctl.svc.ListPurchaseOrders)
}

func (ctl *Controller) CreatePurchaseOrderLine(c *gin.Context) {
	create(c, ctl.svc.CreatePurchaseOrderLine)
}

func (ctl *Controller) UpdatePurchaseOrderLine(c *gin.Context) {
	update(c, ctl.svc.UpdatePurchaseOrderLine)
}

func (ctl *Controller) DeletePurchaseOrderLine(c *gin.Context) {
	byID(c, ctl.svc.DeletePurchaseOrderLine)
}

func (ctl *Controller) GetPurchaseOrderLine(c *gin.Context) {
	byID(c, ctl.svc.GetPurchaseOrderLine)
}

// ListPurchaseOrderLines lists the lines of the purchase order in :id.
func (ctl *Controller) ListPurchaseOrderLines(c *gin.Context) {
	list(c, ctl.svc.ListPurchaseOrderLines)
}

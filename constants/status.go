package constants

// Room status
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusOutOfOrder  = "out-of-order"
	RoomStatusMaintenance = "maintenance"
)

// Housekeeping task status
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
	TaskStatusSkipped    = "skipped"
)

// Housekeeping task type
const (
	TaskTypeCleaning    = "cleaning"
	TaskTypeInspection  = "inspection"
	TaskTypeMaintenance = "maintenance"
	TaskTypeTurndown    = "turndown"
	TaskTypeDeepClean   = "deep-clean"
)

// Housekeeping task priority
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Reservation status
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked-in"
	ReservationStatusCheckedOut = "checked-out"
	ReservationStatusCancelled  = "cancelled"
	ReservationStatusNoShow     = "no-show"
)

// Inventory transaction type
const (
	InventoryTxReceipt    = "receipt"
	InventoryTxIssue      = "issue"
	InventoryTxAdjustment = "adjustment"
	InventoryTxWaste      = "waste"
)

// Purchase order status
const (
	PurchaseOrderDraft             = "draft"
	PurchaseOrderSubmitted         = "submitted"
	PurchaseOrderPartiallyReceived = "partially-received"
	PurchaseOrderReceived          = "received"
	PurchaseOrderCancelled         = "cancelled"
)

// Paging
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// IsActiveReservationStatus reports whether a reservation still holds its room.
func IsActiveReservationStatus(status string) bool {
	switch status {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn:
		return true
	}
	return false
}

package dto

type CreatePropertyRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Timezone string `json:"timezone"`
	IsActive *bool  `json:"isActive"`
}

type UpdatePropertyRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Timezone *string `json:"timezone"`
	IsActive *bool   `json:"isActive"`
}

type CreateRoomTypeRequest struct {
	PropertyID   string   `json:"propertyId" binding:"required"`
	Name         string   `json:"name" binding:"required,max=200"`
	Description  string   `json:"description"`
	MaxOccupancy int      `json:"maxOccupancy" binding:"required,min=1"`
	BaseRate     float64  `json:"baseRate" binding:"min=0"`
	Amenities    []string `json:"amenities"`
	IsActive     *bool    `json:"isActive"`
}

type UpdateRoomTypeRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description  *string  `json:"description"`
	MaxOccupancy *int     `json:"maxOccupancy" binding:"omitempty,min=1"`
	BaseRate     *float64 `json:"baseRate" binding:"omitempty,min=0"`
	Amenities    []string `json:"amenities"`
	IsActive     *bool    `json:"isActive"`
}

type CreateRoomRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	RoomTypeID string `json:"roomTypeId" binding:"required"`
	RoomNumber string `json:"roomNumber" binding:"required,max=20"`
	Floor      int    `json:"floor"`
	Status     string `json:"status" binding:"omitempty,oneof=available occupied out-of-order maintenance"`
	Notes      string `json:"notes"`
}

type UpdateRoomRequest struct {
	RoomTypeID *string `json:"roomTypeId" binding:"omitempty,min=1"`
	RoomNumber *string `json:"roomNumber" binding:"omitempty,min=1,max=20"`
	Floor      *int    `json:"floor"`
	Status     *string `json:"status" binding:"omitempty,oneof=available occupied out-of-order maintenance"`
	Notes      *string `json:"notes"`
}

// CreateRatePlanRequest: ValidFrom and ValidTo are epoch milliseconds. ValidFrom
// is a pointer so that 0 is accepted. A missing IsActive creates an active plan.
type CreateRatePlanRequest struct {
	PropertyID      string  `json:"propertyId" binding:"required"`
	RoomTypeID      string  `json:"roomTypeId" binding:"required"`
	Name            string  `json:"name" binding:"required,max=200"`
	Description     string  `json:"description"`
	BaseRate        float64 `json:"baseRate" binding:"min=0"`
	DiscountPercent float64 `json:"discountPercent" binding:"min=0,max=100"`
	ValidFrom       *int64  `json:"validFrom" binding:"required"`
	ValidTo         int64   `json:"validTo" binding:"required"`
	IsActive        *bool   `json:"isActive"`
}

type UpdateRatePlanRequest struct {
	RoomTypeID      *string  `json:"roomTypeId" binding:"omitempty,min=1"`
	Name            *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description     *string  `json:"description"`
	BaseRate        *float64 `json:"baseRate" binding:"omitempty,min=0"`
	DiscountPercent *float64 `json:"discountPercent" binding:"omitempty,min=0,max=100"`
	ValidFrom       *int64   `json:"validFrom"`
	ValidTo         *int64   `json:"validTo"`
	IsActive        *bool    `json:"isActive"`
}

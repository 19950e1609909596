package dto

import "backoffice/models"

type CreateGuestRequest struct {
	PropertyID    string             `json:"propertyId" binding:"required"`
	FirstName     string             `json:"firstName" binding:"required,max=100"`
	LastName      string             `json:"lastName" binding:"required,max=100"`
	Email         string             `json:"email" binding:"omitempty,email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	LoyaltyNumber string             `json:"loyaltyNumber" binding:"max=50"`
	Preferences   *models.Attributes `json:"preferences"`
}

type UpdateGuestRequest struct {
	FirstName     *string            `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName      *string            `json:"lastName" binding:"omitempty,min=1,max=100"`
	Email         *string            `json:"email" binding:"omitempty,email"`
	Phone         *string            `json:"phone"`
	Address       *string            `json:"address"`
	LoyaltyNumber *string            `json:"loyaltyNumber" binding:"omitempty,max=50"`
	Preferences   *models.Attributes `json:"preferences"`
}

// CreateReservationRequest: CheckIn and CheckOut are epoch milliseconds.
type CreateReservationRequest struct {
	PropertyID  string  `json:"propertyId" binding:"required"`
	GuestID     string  `json:"guestId" binding:"required"`
	RoomID      string  `json:"roomId" binding:"required"`
	CheckIn     int64   `json:"checkIn" binding:"required"`
	CheckOut    int64   `json:"checkOut" binding:"required"`
	Adults      int     `json:"adults" binding:"required,min=1"`
	Children    int     `json:"children" binding:"min=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=pending confirmed checked-in checked-out cancelled no-show"`
	TotalAmount float64 `json:"totalAmount" binding:"min=0"`
	Notes       string  `json:"notes"`
}

type UpdateReservationRequest struct {
	GuestID     *string  `json:"guestId" binding:"omitempty,min=1"`
	RoomID      *string  `json:"roomId" binding:"omitempty,min=1"`
	CheckIn     *int64   `json:"checkIn"`
	CheckOut    *int64   `json:"checkOut"`
	Adults      *int     `json:"adults" binding:"omitempty,min=1"`
	Children    *int     `json:"children" binding:"omitempty,min=0"`
	Status      *string  `json:"status" binding:"omitempty,oneof=pending confirmed checked-in checked-out cancelled no-show"`
	TotalAmount *float64 `json:"totalAmount" binding:"omitempty,min=0"`
	Notes       *string  `json:"notes"`
}

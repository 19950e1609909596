package models

import (
	"fmt"

	"backoffice/constants"

	"github.com/lib/pq"
)

type RoomType struct {
	Base
	PropertyID   string         `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description"`
	MaxOccupancy int            `json:"maxOccupancy"`
	BaseRate     float64        `json:"baseRate"`
	Amenities    pq.StringArray `json:"amenities" gorm:"type:text[]"`
	IsActive     bool           `json:"isActive" gorm:"not null"`
}

func (RoomType) TableName() string { return "room_types" }

type Room struct {
	Base
	PropertyID string `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	RoomTypeID string `json:"roomTypeId" gorm:"type:varchar(36);not null;index"`
	RoomNumber string `json:"roomNumber" gorm:"not null"`
	Floor      int    `json:"floor"`
	Status     string `json:"status" gorm:"default:available"`
	Notes      string `json:"notes"`
}

func (Room) TableName() string { return "rooms" }

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusAvailable, constants.RoomStatusOccupied,
		constants.RoomStatusOutOfOrder, constants.RoomStatusMaintenance:
		return nil
	}
	return fmt.Errorf("invalid status: %q", r.Status)
}

package models

type Guest struct {
	Base
	PropertyID    string     `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	FirstName     string     `json:"firstName" gorm:"not null"`
	LastName      string     `json:"lastName" gorm:"not null"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Address       string     `json:"address,omitempty"`
	LoyaltyNumber string     `json:"loyaltyNumber,omitempty"`
	Preferences   Attributes `json:"preferences" gorm:"type:jsonb"`
}

func (Guest) TableName() string { return "guests" }

func (g *Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}

// Reservation holds a room for a guest. CheckIn and CheckOut are epoch milliseconds.
type Reservation struct {
	Base
	PropertyID  string  `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	GuestID     string  `json:"guestId" gorm:"type:varchar(36);not null;index"`
	RoomID      string  `json:"roomId" gorm:"type:varchar(36);not null;index"`
	CheckIn     int64   `json:"checkIn"`
	CheckOut    int64   `json:"checkOut"`
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
	Status      string  `json:"status" gorm:"default:pending"`
	TotalAmount float64 `json:"totalAmount"`
	Notes       string  `json:"notes"`
}

func (Reservation) TableName() string { return "reservations" }

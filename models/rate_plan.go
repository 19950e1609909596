package models

// RatePlan is a date-bounded price offer for a room type. ValidFrom and
// ValidTo are epoch milliseconds.
type RatePlan struct {
	Base
	PropertyID      string  `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	RoomTypeID      string  `json:"roomTypeId" gorm:"type:varchar(36);not null;index"`
	Name            string  `json:"name" gorm:"not null"`
	Description     string  `json:"description"`
	BaseRate        float64 `json:"baseRate"`
	DiscountPercent float64 `json:"discountPercent"`
	ValidFrom       int64   `json:"validFrom"`
	ValidTo         int64   `json:"validTo"`
	IsActive        bool    `json:"isActive"`
}

func (RatePlan) TableName() string { return "rate_plans" }

// EffectiveRate applies the discount to the base rate.
func (p *RatePlan) EffectiveRate() float64 {
	return p.BaseRate * (100 - p.DiscountPercent) / 100
}

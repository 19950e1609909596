package models

// Property is the tenant scope. It carries no timestamps.
type Property struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name     string `json:"name" gorm:"not null;index"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty" gorm:"index"`
	Timezone string `json:"timezone"`
	IsActive bool   `json:"isActive" gorm:"not null"`
}

func (Property) TableName() string { return "properties" }

func (p *Property) GetID() string { return p.ID }

func (p *Property) SetID(id string) { p.ID = id }

package model

import "github.com/shopspring/decimal"

// Toode represents a pawned product.
type Toode struct {
	ToodeID   uint            `json:"toode_id" gorm:"primaryKey;autoIncrement"`
	Nimetus   string          `json:"nimetus" gorm:"size:255;not null;index"`
	Kirjaldus string          `json:"kirjaldus,omitempty" gorm:"type:text"`
	StatusID  uint            `json:"status_id" gorm:"not null;index"`
	Image     string          `json:"image,omitempty" gorm:"size:255"`
	Hind      decimal.Decimal `json:"hind" gorm:"type:decimal(20,2);not null"`

	// Relations
	Status *Status `json:"status,omitempty" gorm:"foreignKey:StatusID"`
}

func (Toode) TableName() string {
	return "toode"
}

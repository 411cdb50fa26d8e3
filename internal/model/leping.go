package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Leping represents a pawn contract binding a client, a product and the
// employee who drew it up.
type Leping struct {
	LepingID       uint            `json:"leping_id" gorm:"primaryKey;autoIncrement"`
	KlientID       uint            `json:"klient_id" gorm:"not null;index"`
	ToodeID        uint            `json:"toode_id" gorm:"not null;index"`
	TootajaID      uint            `json:"tootaja_id" gorm:"not null;index"`
	Date           *time.Time      `json:"date,omitempty" gorm:"type:date"`
	DateValjaOstud *time.Time      `json:"date_valja_ostud,omitempty" gorm:"type:date"`
	PantHind       decimal.Decimal `json:"pant_hind" gorm:"type:decimal(20,2)"`
	ValjaOstudHind decimal.Decimal `json:"valja_ostud_hind" gorm:"type:decimal(20,2)"`
	Ostuhind       decimal.Decimal `json:"ostuhind" gorm:"type:decimal(20,2)"`
	Muugihind      decimal.Decimal `json:"muugihind" gorm:"type:decimal(20,2)"`
	LepingType     string          `json:"leping_type,omitempty" gorm:"size:50"`

	// Relations
	Klient  *Klient  `json:"klient,omitempty" gorm:"foreignKey:KlientID"`
	Toode   *Toode   `json:"toode,omitempty" gorm:"foreignKey:ToodeID"`
	Tootaja *Tootaja `json:"tootaja,omitempty" gorm:"foreignKey:TootajaID"`
}

func (Leping) TableName() string {
	return "leping"
}

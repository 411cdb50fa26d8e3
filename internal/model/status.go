package model

// Status is the reference table for product states (in stock, sold,
// bought back). Seeded by cmd/seed.
type Status struct {
	StatusID uint   `json:"status_id" gorm:"primaryKey;autoIncrement"`
	Nimetus  string `json:"nimetus" gorm:"size:50;not null"`
}

func (Status) TableName() string {
	return "status"
}

package model

// KlientStatus is the closed status enum for clients.
type KlientStatus string

const (
	KlientStatusActive  KlientStatus = "active"
	KlientStatusBlocked KlientStatus = "blocked"
)

// Valid reports whether the value is in the enum.
func (s KlientStatus) Valid() bool {
	return s == KlientStatusActive || s == KlientStatusBlocked
}

// Klient represents a pawnshop client.
type Klient struct {
	KlientID      uint         `json:"klient_id" gorm:"primaryKey;autoIncrement"`
	Nimi          string       `json:"nimi" gorm:"size:255;not null;index"`
	Perekonnanimi string       `json:"perekonnanimi" gorm:"size:255;not null;index"`
	Kood          string       `json:"kood" gorm:"size:50;not null;index"`
	Tel           string       `json:"tel,omitempty" gorm:"size:50"`
	Aadres        string       `json:"aadres,omitempty" gorm:"size:255"`
	Status        KlientStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
}

func (Klient) TableName() string {
	return "klient"
}

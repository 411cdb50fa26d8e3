package model

// Tootaja represents an employee, the authenticated principal of the
// system. The login code (kood) is unique; the password is stored only as
// a bcrypt hash and never serialized.
type Tootaja struct {
	TootajaID     uint   `json:"tootaja_id" gorm:"primaryKey;autoIncrement"`
	Nimi          string `json:"nimi" gorm:"size:255;not null"`
	Perekonnanimi string `json:"perekonnanimi" gorm:"size:255;not null"`
	Kood          string `json:"kood" gorm:"uniqueIndex;size:50;not null"`
	Tel           string `json:"tel,omitempty" gorm:"size:50"`
	Aadres        string `json:"aadres,omitempty" gorm:"size:255"`
	PassHash      string `json:"-" gorm:"column:pass;size:255;not null"`
	RoleID        uint   `json:"role_id" gorm:"not null;index"`

	// Relations
	Role *Role `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

func (Tootaja) TableName() string {
	return "tootaja"
}

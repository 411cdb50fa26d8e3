package model

// Role is static reference data seeded by cmd/seed. Every tootaja
// references exactly one role.
type Role struct {
	RoleID   uint   `json:"role_id" gorm:"primaryKey;autoIncrement"`
	RoleName string `json:"role_name" gorm:"size:50;not null"`
}

// TableName keeps the original schema's singular table name.
func (Role) TableName() string {
	return "role"
}

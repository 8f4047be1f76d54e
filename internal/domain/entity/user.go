package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleDemo  = "demo"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TrialPeriod registra el primer acceso del usuario demo; de ahí se derivan
// los días restantes del período de prueba.
type TrialPeriod struct {
	UserID      string `gorm:"primaryKey"`
	FirstAccess time.Time
}

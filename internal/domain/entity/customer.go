package entity

import "time"

// Customer representa un cliente del negocio (fiados).
// ID es legible: slug del nombre + sufijo de 5 dígitos derivado del timestamp.
// Name se guarda normalizado (mayúsculas, sin espacios sobrantes).
type Customer struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"index"`
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

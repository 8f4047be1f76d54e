package entity

import "time"

// Claves de configuración conocidas.
const (
	SettingTheme      = "theme"            // "light" | "dark"
	SettingLastActive = "last_active_date" // RFC3339, actualizada por el job de trial
)

// Setting es un par clave/valor de preferencias de la aplicación (tema, estado).
type Setting struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

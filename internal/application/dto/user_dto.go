package dto

import "time"

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // por defecto admin
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse representación de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AuthStateResponse estado de sesión visible para la UI.
type AuthStateResponse struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	UserID          string `json:"user_id,omitempty"`
	Username        string `json:"username,omitempty"`
	Role            string `json:"role,omitempty"`
}

// TrialResponse estado del período de prueba para el banner.
type TrialResponse struct {
	Demo     bool `json:"demo"`   // el usuario es demo
	Active   bool `json:"active"` // quedan días de prueba
	DaysLeft int  `json:"days_left"`
}

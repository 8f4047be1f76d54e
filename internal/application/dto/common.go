package dto

// ErrorResponse es la carga de una notificación de error para la UI:
// Code estable para programar contra él, Message legible para mostrar.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageResponse describe la ventana de paginación devuelta.
type PageResponse struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

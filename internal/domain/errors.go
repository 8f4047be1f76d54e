package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrDuplicateName     = errors.New("ya existe un registro con ese nombre")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrCustomerHasCredit = errors.New("el cliente tiene ventas que lo referencian")
	ErrRegisterOpen      = errors.New("la caja del día ya está abierta")
	ErrRegisterClosed    = errors.New("la caja no está abierta")
)

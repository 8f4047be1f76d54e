package repository

import "github.com/jhoicas/kiosco-api/internal/domain/entity"

// CashRepository define el puerto de persistencia para la caja diaria.
type CashRepository interface {
	Open(register *entity.CashRegister) error
	GetByDate(date string) (*entity.CashRegister, error)
	Update(register *entity.CashRegister) error
	AddMovement(movement *entity.CashMovement) error
	MovementsByRegister(registerID uint) ([]entity.CashMovement, error)
}

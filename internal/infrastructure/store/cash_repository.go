package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

var _ repository.CashRepository = (*CashRepo)(nil)

// CashRepo implementación de CashRepository sobre el almacén local.
type CashRepo struct {
	db *gorm.DB
}

// NewCashRepository construye el adaptador.
func NewCashRepository(db *gorm.DB) *CashRepo {
	return &CashRepo{db: db}
}

// Open crea la caja del día. El índice único sobre date convierte la doble
// apertura en ErrRegisterOpen.
func (r *CashRepo) Open(register *entity.CashRegister) error {
	if err := r.db.Create(register).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRegisterOpen
		}
		return fmt.Errorf("open register: %w", err)
	}
	return nil
}

// GetByDate obtiene la caja de una fecha (2006-01-02). Devuelve (nil, nil) si no existe.
func (r *CashRepo) GetByDate(date string) (*entity.CashRegister, error) {
	var reg entity.CashRegister
	err := r.db.First(&reg, "date = ?", date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get register: %w", err)
	}
	return &reg, nil
}

// Update guarda la caja completa (cierre, arqueo).
func (r *CashRepo) Update(register *entity.CashRegister) error {
	if err := r.db.Save(register).Error; err != nil {
		return fmt.Errorf("update register: %w", err)
	}
	return nil
}

// AddMovement registra un movimiento de caja.
func (r *CashRepo) AddMovement(movement *entity.CashMovement) error {
	if err := r.db.Create(movement).Error; err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// MovementsByRegister devuelve los movimientos de una caja en orden cronológico.
func (r *CashRepo) MovementsByRegister(registerID uint) ([]entity.CashMovement, error) {
	var movements []entity.CashMovement
	err := r.db.Where("register_id = ?", registerID).Order("date, id").Find(&movements).Error
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

package repository

import "github.com/jhoicas/kiosco-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id uint) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List() ([]entity.Supplier, error)
	Delete(id uint) error
}

package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre el almacén local.
type SupplierRepo struct {
	db *gorm.DB
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(db *gorm.DB) *SupplierRepo {
	return &SupplierRepo{db: db}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id uint) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.db.First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update guarda el proveedor completo.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	if err := r.db.Save(supplier).Error; err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List devuelve todos los proveedores ordenados por razón social.
func (r *SupplierRepo) List() ([]entity.Supplier, error) {
	var suppliers []entity.Supplier
	if err := r.db.Order("company_name").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

// Delete elimina por ID.
func (r *SupplierRepo) Delete(id uint) error {
	if err := r.db.Delete(&entity.Supplier{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre el almacén local.
type CustomerRepo struct {
	db *gorm.DB
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// GetByName busca por el nombre normalizado exacto.
func (r *CustomerRepo) GetByName(name string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.First(&c, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by name: %w", err)
	}
	return &c, nil
}

// Update guarda el cliente completo.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List devuelve todos los clientes ordenados por nombre.
func (r *CustomerRepo) List() ([]entity.Customer, error) {
	var customers []entity.Customer
	if err := r.db.Order("name").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Delete elimina por ID. La verificación de fiados pendientes es del caso de uso.
func (r *CustomerRepo) Delete(id string) error {
	if err := r.db.Delete(&entity.Customer{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

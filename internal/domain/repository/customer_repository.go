package repository

import "github.com/jhoicas/kiosco-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByName busca por nombre normalizado (mayúsculas, sin espacios sobrantes).
	GetByName(name string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List() ([]entity.Customer, error)
	Delete(id string) error
}

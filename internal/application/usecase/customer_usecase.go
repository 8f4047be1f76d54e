package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes: alta con control de duplicados,
// baja bloqueada por fiados pendientes.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	sales     repository.SaleRepository
	now       func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, sales repository.SaleRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, sales: sales, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *CustomerUseCase) WithClock(now func() time.Time) *CustomerUseCase {
	uc.now = now
	return uc
}

// NormalizeName normaliza como se guarda: mayúsculas y sin espacios sobrantes.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// CustomerID genera el ID legible: slug del nombre en mayúsculas más un
// sufijo de 5 dígitos tomado del timestamp para reducir colisiones.
func CustomerID(name string, now time.Time) string {
	clean := strings.ToUpper(slug.Make(name))
	ts := fmt.Sprintf("%d", now.UnixMilli())
	return clean + "-" + ts[len(ts)-5:]
}

// Create da de alta un cliente. El nombre es obligatorio y único sin
// distinguir mayúsculas ni espacios al borde; un duplicado se rechaza sin
// persistir nada.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := NormalizeName(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.customers.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}
	now := uc.now()
	customer := &entity.Customer{
		ID:        CustomerID(in.Name, now),
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza datos de contacto del cliente.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Phone != nil {
		customer.Phone = strings.TrimSpace(*in.Phone)
	}
	customer.UpdatedAt = uc.now()
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente, salvo que alguna venta lo referencie (paga o
// pendiente): en ese caso rechaza sin borrar nada (integridad referencial).
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	n, err := uc.sales.CountByCustomer(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrCustomerHasCredit
	}
	return uc.customers.Delete(id)
}

// List devuelve clientes filtrados por nombre o teléfono (substring sin
// distinguir mayúsculas) con paginación.
func (uc *CustomerUseCase) List(query string, page, perPage int) (*dto.CustomerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}
	all, err := uc.customers.List()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]entity.Customer, 0, len(all))
	for _, c := range all {
		if q == "" ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) {
			filtered = append(filtered, c)
		}
	}

	total := int64(len(filtered))
	start := (page - 1) * perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]dto.CustomerResponse, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, *toCustomerResponse(&filtered[i]))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page, PerPage: perPage, Total: total},
	}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

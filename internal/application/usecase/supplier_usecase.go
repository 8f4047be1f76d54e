package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
	now  func() time.Time
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, now: time.Now}
}

// Create da de alta un proveedor. La razón social es obligatoria.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	lastVisit, err := parseVisit(in.LastVisit)
	if err != nil {
		return nil, err
	}
	nextVisit, err := parseVisit(in.NextVisit)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	supplier := &entity.Supplier{
		CompanyName: name,
		Contacts:    toContacts(in.Contacts),
		LastVisit:   lastVisit,
		NextVisit:   nextVisit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id uint) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor.
func (uc *SupplierUseCase) Update(id uint, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.CompanyName != nil {
		name := strings.TrimSpace(*in.CompanyName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.CompanyName = name
	}
	if in.Contacts != nil {
		supplier.Contacts = toContacts(in.Contacts)
	}
	if in.LastVisit != nil {
		v, err := parseVisit(*in.LastVisit)
		if err != nil {
			return nil, err
		}
		supplier.LastVisit = v
	}
	if in.NextVisit != nil {
		v, err := parseVisit(*in.NextVisit)
		if err != nil {
			return nil, err
		}
		supplier.NextVisit = v
	}
	supplier.UpdatedAt = uc.now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor por ID.
func (uc *SupplierUseCase) Delete(id uint) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List devuelve proveedores filtrados por razón social con paginación.
func (uc *SupplierUseCase) List(query string, page, perPage int) (*dto.SupplierListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]entity.Supplier, 0, len(all))
	for _, s := range all {
		if q == "" || strings.Contains(strings.ToLower(s.CompanyName), q) {
			filtered = append(filtered, s)
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
	items := make([]dto.SupplierResponse, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, *toSupplierResponse(&filtered[i]))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page, PerPage: perPage, Total: total},
	}, nil
}

func parseVisit(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}

func toContacts(in []dto.SupplierContactDTO) []entity.SupplierContact {
	out := make([]entity.SupplierContact, 0, len(in))
	for _, c := range in {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		out = append(out, entity.SupplierContact{Name: name, Phone: strings.TrimSpace(c.Phone)})
	}
	return out
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	contacts := make([]dto.SupplierContactDTO, 0, len(s.Contacts))
	for _, c := range s.Contacts {
		contacts = append(contacts, dto.SupplierContactDTO{Name: c.Name, Phone: c.Phone})
	}
	resp := &dto.SupplierResponse{
		ID:          s.ID,
		CompanyName: s.CompanyName,
		Contacts:    contacts,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.LastVisit != nil {
		resp.LastVisit = s.LastVisit.Format(dateLayout)
	}
	if s.NextVisit != nil {
		resp.NextVisit = s.NextVisit.Format(dateLayout)
	}
	return resp
}

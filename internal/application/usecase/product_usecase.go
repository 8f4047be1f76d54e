package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/catalog"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
	"github.com/jhoicas/kiosco-api/pkg/money"
)

// ProductUseCase casos de uso del catálogo: CRUD más la vista rankeada.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *ProductUseCase) WithClock(now func() time.Time) *ProductUseCase {
	uc.now = now
	return uc
}

func validateProductNumbers(stock, cost, price decimal.Decimal) error {
	if stock.IsNegative() || cost.IsNegative() || price.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea un producto. Nombre y unidad son obligatorios; stock y precios
// no pueden ser negativos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if err := validateProductNumbers(in.Stock, in.CostPrice, in.Price); err != nil {
		return nil, err
	}
	now := uc.now()
	product := &entity.Product{
		Name:       name,
		Stock:      in.Stock,
		CostPrice:  in.CostPrice,
		Price:      in.Price,
		Unit:       in.Unit,
		Expiration: strings.TrimSpace(in.Expiration),
		Barcode:    strings.TrimSpace(in.Barcode),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id uint) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product), nil
}

// LookupByBarcode resuelve un producto por código de barras exacto.
func (uc *ProductUseCase) LookupByBarcode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product), nil
}

// Update actualiza el producto en el lugar.
func (uc *ProductUseCase) Update(id uint, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Stock != nil {
		if in.Stock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		product.Unit = *in.Unit
	}
	if in.Expiration != nil {
		product.Expiration = strings.TrimSpace(*in.Expiration)
	}
	if in.Barcode != nil {
		product.Barcode = strings.TrimSpace(*in.Barcode)
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// Delete elimina el producto. Sin cascada contra ventas históricas.
func (uc *ProductUseCase) Delete(id uint) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List devuelve la vista rankeada del catálogo: filtro por nombre o código,
// vencidos primero, por vencer después, el resto por stock según dir; luego
// recorta la ventana de paginación. La colección se relee en cada llamada
// (snapshot, sin suscripción).
func (uc *ProductUseCase) List(query string, dir catalog.Direction, page, perPage int) (*dto.ProductListResponse, error) {
	if !catalog.ValidDirection(dir) {
		dir = catalog.Asc
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 5
	}
	if perPage > 100 {
		perPage = 100
	}

	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	ranked := catalog.Rank(all, query, dir, uc.now())

	total := int64(len(ranked))
	start := (page - 1) * perPage
	if start > len(ranked) {
		start = len(ranked)
	}
	end := start + perPage
	if end > len(ranked) {
		end = len(ranked)
	}

	items := make([]dto.ProductResponse, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, *uc.toResponse(&ranked[i]))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page, PerPage: perPage, Total: total},
	}, nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	ref := uc.now()
	status := catalog.Classify(*p, ref)
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Stock:        p.Stock,
		CostPrice:    p.CostPrice,
		Price:        p.Price,
		PriceDisplay: money.Format(p.Price),
		Unit:         p.Unit,
		Expiration:   p.Expiration,
		Barcode:      p.Barcode,
		Expired:      status == catalog.StatusExpired,
		ExpiringSoon: status == catalog.StatusExpiringSoon,
		ExpiresToday: catalog.ExpiresToday(*p, ref),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

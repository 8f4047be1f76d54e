package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre el almacén local.
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto; el ID autoincremental queda en product.ID.
func (r *ProductRepo) Create(product *entity.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.db.First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByBarcode busca por código de barras exacto (índice secundario).
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.First(&p, "barcode = ?", barcode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by barcode: %w", err)
	}
	return &p, nil
}

// Update guarda el producto completo.
func (r *ProductRepo) Update(product *entity.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List devuelve la colección completa (snapshot al momento de la llamada).
// El ordenamiento lo hace el motor de ranking, no el almacén.
func (r *ProductRepo) List() ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Delete elimina por ID. Sin cascada: las ventas históricas conservan sus líneas.
func (r *ProductRepo) Delete(id uint) error {
	if err := r.db.Delete(&entity.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

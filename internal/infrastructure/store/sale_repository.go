package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre el almacén local.
type SaleRepo struct {
	db *gorm.DB
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(db *gorm.DB) *SaleRepo {
	return &SaleRepo{db: db}
}

// CreateWithStock persiste la venta y descuenta el stock de cada producto en
// una sola transacción. Si algún producto no alcanza el stock pedido, la
// transacción se revierte completa con ErrInsufficientStock.
func (r *SaleRepo) CreateWithStock(sale *entity.Sale) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			var p entity.Product
			if err := tx.First(&p, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrNotFound
				}
				return fmt.Errorf("get product for sale: %w", err)
			}
			if p.Stock.LessThan(item.Quantity) {
				return domain.ErrInsufficientStock
			}
			p.Stock = p.Stock.Sub(item.Quantity)
			if err := tx.Save(&p).Error; err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
		}
		if err := tx.Create(sale).Error; err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}
		return nil
	})
}

// GetByID obtiene una venta con sus líneas. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.db.Preload("Items").First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List devuelve ventas paginadas (más recientes primero) y el total.
func (r *SaleRepo) List(limit, offset int) ([]entity.Sale, int64, error) {
	var total int64
	if err := r.db.Model(&entity.Sale{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}
	var sales []entity.Sale
	err := r.db.Preload("Items").
		Order("date desc, id desc").
		Limit(limit).Offset(offset).
		Find(&sales).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	return sales, total, nil
}

// ListByCustomer devuelve las ventas que referencian al cliente (índice secundario).
func (r *SaleRepo) ListByCustomer(customerID string) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("date desc, id desc").
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("list sales by customer: %w", err)
	}
	return sales, nil
}

// CountByCustomer cuenta las ventas que referencian al cliente. Una venta
// saldada sigue contando: el histórico referencia por ID.
func (r *SaleRepo) CountByCustomer(customerID string) (int64, error) {
	var n int64
	err := r.db.Model(&entity.Sale{}).
		Where("customer_id = ?", customerID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count sales by customer: %w", err)
	}
	return n, nil
}

// AddPayment registra un pago sobre una venta fiada.
func (r *SaleRepo) AddPayment(payment *entity.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// PaymentsBySale devuelve los pagos de una venta en orden cronológico.
func (r *SaleRepo) PaymentsBySale(saleID int64) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.Where("sale_id = ?", saleID).Order("date").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// MarkPaid marca la venta como saldada.
func (r *SaleRepo) MarkPaid(saleID int64) error {
	err := r.db.Model(&entity.Sale{}).
		Where("id = ?", saleID).
		Update("paid", true).Error
	if err != nil {
		return fmt.Errorf("mark sale paid: %w", err)
	}
	return nil
}

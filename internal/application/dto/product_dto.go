package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Name       string          `json:"name"`
	Stock      decimal.Decimal `json:"stock"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	Price      decimal.Decimal `json:"price"`
	Unit       string          `json:"unit"`
	Expiration string          `json:"expiration,omitempty"`
	Barcode    string          `json:"barcode,omitempty"`
}

// UpdateProductRequest datos parciales para actualizar un producto.
type UpdateProductRequest struct {
	Name       *string          `json:"name,omitempty"`
	Stock      *decimal.Decimal `json:"stock,omitempty"`
	CostPrice  *decimal.Decimal `json:"cost_price,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Unit       *string          `json:"unit,omitempty"`
	Expiration *string          `json:"expiration,omitempty"`
	Barcode    *string          `json:"barcode,omitempty"`
}

// ProductResponse representación de un producto. Los flags de vencimiento son
// presentacionales (badges); PriceDisplay viene formateado en es-AR.
type ProductResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Stock        decimal.Decimal `json:"stock"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
	Unit         string          `json:"unit"`
	Expiration   string          `json:"expiration,omitempty"`
	Barcode      string          `json:"barcode,omitempty"`
	Expired      bool            `json:"expired"`
	ExpiringSoon bool            `json:"expiring_soon"`
	ExpiresToday bool            `json:"expires_today"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista rankeada y paginada del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

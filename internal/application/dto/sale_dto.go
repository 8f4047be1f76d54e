package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de una venta a crear.
type SaleItemRequest struct {
	ProductID uint            `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateSaleRequest datos para registrar una venta. Si Credit es true,
// CustomerID debe referenciar un cliente existente.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
	Credit        bool              `json:"credit,omitempty"`
	CustomerID    string            `json:"customer_id,omitempty"`
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleResponse representación de una venta.
type SaleResponse struct {
	ID            int64              `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	PaymentMethod string             `json:"payment_method"`
	Total         decimal.Decimal    `json:"total"`
	TotalDisplay  string             `json:"total_display"`
	Date          time.Time          `json:"date"`
	Credit        bool               `json:"credit"`
	CustomerID    string             `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	Paid          bool               `json:"paid"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// PaymentRequest pago sobre una venta fiada.
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PaymentResponse resultado de registrar un pago.
type PaymentResponse struct {
	SaleID  int64           `json:"sale_id"`
	Amount  decimal.Decimal `json:"amount"`
	Paid    bool            `json:"paid"`    // la venta quedó saldada
	Pending decimal.Decimal `json:"pending"` // saldo restante
}

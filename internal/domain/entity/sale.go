package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago.
const (
	PaymentCash     = "EFECTIVO"
	PaymentTransfer = "TRANSFERENCIA"
	PaymentCard     = "TARJETA"
)

// ValidPaymentMethod indica si el medio de pago pertenece a la enumeración fija.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentCard:
		return true
	}
	return false
}

// Sale representa una venta. ID es un snowflake (sembrado por timestamp).
// Si Credit es true la venta es un fiado: referencia al cliente por CustomerID
// y queda pendiente hasta que los pagos acumulados cubran el total.
type Sale struct {
	ID            int64      `gorm:"primaryKey"`
	Items         []SaleItem `gorm:"foreignKey:SaleID"`
	PaymentMethod string
	Total         decimal.Decimal `gorm:"type:numeric"`
	Date          time.Time
	Credit        bool
	CustomerID    string `gorm:"index"`
	CustomerName  string
	Paid          bool
}

// SaleItem es una línea de venta. Copia nombre, unidad y precios del producto
// al momento de vender: borrar el producto no altera el histórico.
type SaleItem struct {
	ID        uint  `gorm:"primaryKey;autoIncrement"`
	SaleID    int64 `gorm:"index"`
	ProductID uint
	Name      string
	Unit      string
	Quantity  decimal.Decimal `gorm:"type:numeric"`
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
	CostPrice decimal.Decimal `gorm:"type:numeric"`
}

// Payment es un pago parcial o total sobre una venta fiada.
type Payment struct {
	ID     int64           `gorm:"primaryKey"`
	SaleID int64           `gorm:"index"`
	Amount decimal.Decimal `gorm:"type:numeric"`
	Date   time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	MovementIncome  = "INGRESO"
	MovementExpense = "EGRESO"
)

// CashRegister es la caja diaria. Se abre una sola vez por fecha calendario
// (Date en formato 2006-01-02) y al cerrarse registra el arqueo.
type CashRegister struct {
	ID                uint            `gorm:"primaryKey;autoIncrement"`
	Date              string          `gorm:"uniqueIndex"`
	InitialAmount     decimal.Decimal `gorm:"type:numeric"`
	Closed            bool
	ClosingAmount     decimal.Decimal `gorm:"type:numeric"`
	ClosingDifference decimal.Decimal `gorm:"type:numeric"`
	ClosedAt          *time.Time
	OpenedBy          string
	ClosedBy          string
	Comments          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CashMovement es un ingreso o egreso de la caja. Los movimientos originados
// en ventas llevan el detalle del producto y la ganancia calculada.
type CashMovement struct {
	ID            int64 `gorm:"primaryKey"`
	RegisterID    uint  `gorm:"index"`
	Type          string
	Amount        decimal.Decimal `gorm:"type:numeric"`
	Description   string
	PaymentMethod string
	ProductID     uint
	ProductName   string
	Quantity      decimal.Decimal `gorm:"type:numeric"`
	Profit        decimal.Decimal `gorm:"type:numeric"`
	SaleID        int64           `gorm:"index"`
	Date          time.Time
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenRegisterRequest apertura de la caja diaria.
type OpenRegisterRequest struct {
	InitialAmount decimal.Decimal `json:"initial_amount"`
}

// CashMovementRequest movimiento manual de caja (ingreso o egreso).
type CashMovementRequest struct {
	Type          string          `json:"type"` // INGRESO | EGRESO
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}

// CloseRegisterRequest cierre de caja con arqueo.
type CloseRegisterRequest struct {
	ClosingAmount decimal.Decimal `json:"closing_amount"`
	Comments      string          `json:"comments,omitempty"`
}

// CashMovementResponse movimiento registrado.
type CashMovementResponse struct {
	ID            int64           `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	ProductName   string          `json:"product_name,omitempty"`
	Profit        decimal.Decimal `json:"profit"`
	Date          time.Time       `json:"date"`
}

// CashRegisterResponse estado de la caja con sus totales acumulados.
type CashRegisterResponse struct {
	ID                uint                   `json:"id"`
	Date              string                 `json:"date"`
	InitialAmount     decimal.Decimal        `json:"initial_amount"`
	TotalIncome       decimal.Decimal        `json:"total_income"`
	TotalExpense      decimal.Decimal        `json:"total_expense"`
	TotalProfit       decimal.Decimal        `json:"total_profit"`
	CashIncome        decimal.Decimal        `json:"cash_income"` // solo EFECTIVO
	Expected          decimal.Decimal        `json:"expected"`    // inicial + efectivo - egresos
	Closed            bool                   `json:"closed"`
	ClosingAmount     decimal.Decimal        `json:"closing_amount"`
	ClosingDifference decimal.Decimal        `json:"closing_difference"`
	Comments          string                 `json:"comments,omitempty"`
	Movements         []CashMovementResponse `json:"movements"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida admitidas para Stock.
const (
	UnitPiece = "Unid."
	UnitKg    = "Kg"
	UnitGram  = "gr"
	UnitLiter = "L"
	UnitMl    = "ml"
)

// ValidUnit indica si la unidad pertenece a la enumeración fija.
func ValidUnit(u string) bool {
	switch u {
	case UnitPiece, UnitKg, UnitGram, UnitLiter, UnitMl:
		return true
	}
	return false
}

// Product representa un producto del catálogo del kiosco.
// Stock puede ser fraccionario (Kg, L). Expiration se guarda como texto de fecha
// (sin hora); un valor vacío o no parseable equivale a "sin vencimiento".
type Product struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	Name       string          `gorm:"index"`
	Stock      decimal.Decimal `gorm:"type:numeric"`
	CostPrice  decimal.Decimal `gorm:"type:numeric"`
	Price      decimal.Decimal `gorm:"type:numeric"` // precio de venta
	Unit       string
	Expiration string
	Barcode    string `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer con locale es-AR: separador de miles "." y decimal ",".
var printer = message.NewPrinter(language.MustParse("es-AR"))

// Format presenta un monto como moneda argentina, ej. "$ 1.234,50".
func Format(v decimal.Decimal) string {
	f, _ := v.Float64()
	return printer.Sprintf("$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

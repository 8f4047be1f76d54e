package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
)

// Direction ordena el stock dentro de cada bucket de vencimiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ValidDirection indica si la dirección es asc o desc.
func ValidDirection(d Direction) bool {
	return d == Asc || d == Desc
}

// Status clasifica un producto respecto de su vencimiento.
type Status int

const (
	StatusExpired      Status = iota // venció antes de hoy
	StatusExpiringSoon               // vence hoy o dentro de la ventana de 7 días
	StatusNormal                     // resto, incluye productos sin vencimiento
)

// expiringWindowDays es la ventana de "por vencer".
const expiringWindowDays = 7

// Rank produce la vista filtrada y priorizada del catálogo: primero los
// vencidos, después los que vencen dentro de 7 días, después el resto;
// dentro de cada bucket ordena por stock según dir. El orden es estable:
// empates conservan el orden relativo de entrada. No muta el slice recibido.
func Rank(products []entity.Product, query string, dir Direction, ref time.Time) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, query) {
			out = append(out, p)
		}
	}

	today := dayOf(ref)
	status := make([]Status, len(out))
	for i := range out {
		status[i] = classify(out[i].Expiration, today)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if status[i] != status[j] {
			return status[i] < status[j]
		}
		cmp := out[i].Stock.Cmp(out[j].Stock)
		if dir == Desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// Matches aplica el filtro de búsqueda: substring sin distinguir mayúsculas
// sobre nombre o código de barras; query vacío acepta todo.
func Matches(p entity.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Barcode), q)
}

// Classify devuelve el bucket de vencimiento del producto respecto de ref.
// Un vencimiento vacío o no parseable cuenta como StatusNormal.
func Classify(p entity.Product, ref time.Time) Status {
	return classify(p.Expiration, dayOf(ref))
}

// ExpiresToday indica si el producto vence exactamente en la fecha de ref.
// Es un dato presentacional (badge): para el orden, "hoy" sigue dentro del
// bucket StatusExpiringSoon.
func ExpiresToday(p entity.Product, ref time.Time) bool {
	exp, ok := parseExpiration(p.Expiration)
	if !ok {
		return false
	}
	return exp.Equal(dayOf(ref))
}

func classify(expiration string, today time.Time) Status {
	exp, ok := parseExpiration(expiration)
	if !ok {
		return StatusNormal
	}
	if exp.Before(today) {
		return StatusExpired
	}
	if !exp.After(today.AddDate(0, 0, expiringWindowDays)) {
		return StatusExpiringSoon
	}
	return StatusNormal
}

// parseExpiration interpreta la fecha con parsing laxo y la trunca al día.
// Nunca falla con pánico: cualquier texto inválido equivale a sin vencimiento.
func parseExpiration(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return dayOf(t), true
}

// dayOf trunca a granularidad de día en UTC para comparar fechas calendario
// sin que la zona horaria del valor parseado altere el resultado.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

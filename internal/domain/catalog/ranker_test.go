package catalog_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosco-api/internal/domain/catalog"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
)

// Fecha de referencia fija para que los tests no dependan del reloj.
var refDate = time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)

func day(offset int) string {
	return refDate.AddDate(0, 0, offset).Format("2006-01-02")
}

func product(name string, stock int64, expiration string) entity.Product {
	return entity.Product{
		Name:       name,
		Stock:      decimal.NewFromInt(stock),
		Expiration: expiration,
		Unit:       entity.UnitPiece,
	}
}

func names(ps []entity.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

// Escenario del catálogo: Milk vencida, Bread por vencer, Rice sin vencimiento.
func TestRank_EscenarioVencidoPorVencerNormal(t *testing.T) {
	products := []entity.Product{
		product("Milk", 5, day(-1)),
		product("Bread", 2, day(3)),
		product("Rice", 10, ""),
	}

	got := catalog.Rank(products, "", catalog.Asc, refDate)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Milk", "Bread", "Rice"}, names(got))
}

// Los buckets mantienen su orden sin importar la dirección de stock.
func TestRank_OrdenDeBucketsNoDependeDeLaDireccion(t *testing.T) {
	products := []entity.Product{
		product("normal", 1, day(30)),
		product("porVencer", 99, day(5)),
		product("vencido", 50, day(-10)),
	}

	for _, dir := range []catalog.Direction{catalog.Asc, catalog.Desc} {
		got := catalog.Rank(products, "", dir, refDate)
		assert.Equal(t, []string{"vencido", "porVencer", "normal"}, names(got),
			"dirección %s", dir)
	}
}

// Dentro de un bucket el stock es monótono; invertir la dirección invierte
// el orden interno pero no el de los buckets.
func TestRank_StockMonotonoDentroDelBucket(t *testing.T) {
	products := []entity.Product{
		product("a", 8, day(2)),
		product("b", 3, day(4)),
		product("c", 5, day(1)),
	}

	asc := catalog.Rank(products, "", catalog.Asc, refDate)
	assert.Equal(t, []string{"b", "c", "a"}, names(asc))

	desc := catalog.Rank(products, "", catalog.Desc, refDate)
	assert.Equal(t, []string{"a", "c", "b"}, names(desc))
}

// Sin vencimiento => normal; nunca antes que un producto por vencer.
func TestRank_SinVencimientoEsNormal(t *testing.T) {
	products := []entity.Product{
		product("sinFecha", 0, ""),
		product("porVencer", 100, day(7)),
	}

	got := catalog.Rank(products, "", catalog.Asc, refDate)
	assert.Equal(t, []string{"porVencer", "sinFecha"}, names(got))

	assert.Equal(t, catalog.StatusNormal, catalog.Classify(products[0], refDate))
	assert.Equal(t, catalog.StatusExpiringSoon, catalog.Classify(products[1], refDate))
}

// Fechas ilegibles no deben romper el orden: cuentan como sin vencimiento.
func TestRank_VencimientoIlegibleCuentaComoNormal(t *testing.T) {
	products := []entity.Product{
		product("roto", 1, "no-es-una-fecha"),
		product("vencido", 9, day(-2)),
	}

	got := catalog.Rank(products, "", catalog.Asc, refDate)
	assert.Equal(t, []string{"vencido", "roto"}, names(got))
	assert.Equal(t, catalog.StatusNormal, catalog.Classify(products[0], refDate))
}

// Bordes de la ventana: hoy y hoy+7 son "por vencer", hoy+8 es normal, ayer vencido.
func TestRank_BordesDeLaVentanaDeSieteDias(t *testing.T) {
	cases := []struct {
		name   string
		offset int
		want   catalog.Status
	}{
		{"ayer", -1, catalog.StatusExpired},
		{"hoy", 0, catalog.StatusExpiringSoon},
		{"séptimo día", 7, catalog.StatusExpiringSoon},
		{"octavo día", 8, catalog.StatusNormal},
	}
	for _, tc := range cases {
		p := product(tc.name, 1, day(tc.offset))
		assert.Equal(t, tc.want, catalog.Classify(p, refDate), tc.name)
	}
}

// "Vence hoy" es un badge presentacional: no crea un cuarto bucket.
func TestExpiresToday_EsSoloPresentacional(t *testing.T) {
	hoy := product("hoy", 1, day(0))
	manana := product("mañana", 1, day(1))

	assert.True(t, catalog.ExpiresToday(hoy, refDate))
	assert.False(t, catalog.ExpiresToday(manana, refDate))

	// Ambos comparten bucket: el orden entre ellos lo decide el stock.
	assert.Equal(t, catalog.Classify(hoy, refDate), catalog.Classify(manana, refDate))
}

// Filtro por substring sin distinguir mayúsculas, sobre nombre o código.
func TestRank_FiltroPorNombreOBarcode(t *testing.T) {
	leche := product("Leche Entera", 5, "")
	arroz := product("Arroz", 3, "")
	arroz.Barcode = "7791234567890"

	products := []entity.Product{leche, arroz}

	assert.Equal(t, []string{"Leche Entera"}, names(catalog.Rank(products, "LECHE", catalog.Asc, refDate)))
	assert.Equal(t, []string{"Arroz"}, names(catalog.Rank(products, "779123", catalog.Asc, refDate)))
	assert.Len(t, catalog.Rank(products, "", catalog.Asc, refDate), 2)
	assert.Empty(t, catalog.Rank(products, "inexistente", catalog.Asc, refDate))
}

// Rank es idempotente: aplicar dos veces con los mismos insumos no cambia nada.
func TestRank_Idempotente(t *testing.T) {
	products := []entity.Product{
		product("a", 4, day(-3)),
		product("b", 4, day(2)),
		product("c", 1, ""),
		product("d", 1, day(2)),
	}

	once := catalog.Rank(products, "", catalog.Asc, refDate)
	twice := catalog.Rank(once, "", catalog.Asc, refDate)
	assert.Equal(t, names(once), names(twice))
}

// Empates de stock dentro de un bucket conservan el orden de entrada (sort estable).
func TestRank_EmpatesConservanOrdenDeEntrada(t *testing.T) {
	products := []entity.Product{
		product("primero", 5, day(3)),
		product("segundo", 5, day(6)),
		product("tercero", 5, day(1)),
	}

	got := catalog.Rank(products, "", catalog.Asc, refDate)
	assert.Equal(t, []string{"primero", "segundo", "tercero"}, names(got))
}

// El slice de entrada no se muta (función pura).
func TestRank_NoMutaLaEntrada(t *testing.T) {
	products := []entity.Product{
		product("z", 9, day(-1)),
		product("a", 1, ""),
	}

	_ = catalog.Rank(products, "", catalog.Asc, refDate)
	assert.Equal(t, []string{"z", "a"}, names(products))
}

// Stock cero es válido: ordena, no reclasifica.
func TestRank_StockCeroNoCambiaElBucket(t *testing.T) {
	products := []entity.Product{
		product("conStock", 10, day(3)),
		product("sinStock", 0, day(3)),
	}

	got := catalog.Rank(products, "", catalog.Asc, refDate)
	assert.Equal(t, []string{"sinStock", "conStock"}, names(got))
	assert.Equal(t, catalog.StatusExpiringSoon, catalog.Classify(products[1], refDate))
}

package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/application/usecase"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/infrastructure/store"
)

type saleFixture struct {
	sales     *usecase.SaleUseCase
	products  *usecase.ProductUseCase
	customers *usecase.CustomerUseCase
	db        *gorm.DB
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	db := openTestStore(t)
	node := testNode(t)

	productRepo := store.NewProductRepository(db)
	customerRepo := store.NewCustomerRepository(db)
	saleRepo := store.NewSaleRepository(db)

	return &saleFixture{
		sales:     usecase.NewSaleUseCase(saleRepo, productRepo, customerRepo, nil, node),
		products:  usecase.NewProductUseCase(productRepo),
		customers: usecase.NewCustomerUseCase(customerRepo, saleRepo),
		db:        db,
	}
}

func (f *saleFixture) seedProduct(t *testing.T, name string, stock, price int64) *dto.ProductResponse {
	t.Helper()
	out, err := f.products.Create(dto.CreateProductRequest{
		Name:      name,
		Stock:     decimal.NewFromInt(stock),
		CostPrice: decimal.NewFromInt(price / 2),
		Price:     decimal.NewFromInt(price),
		Unit:      entity.UnitPiece,
	})
	require.NoError(t, err)
	return out
}

func TestSale_Create_DescuentaStockYCopiaDatos(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Gaseosa", 10, 900)

	out, err := f.sales.Create(dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID, Quantity: decimal.NewFromInt(3)},
		},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.NewFromInt(2700)), "total = precio x cantidad")
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Gaseosa", out.Items[0].Name, "la línea copia los datos del producto")

	got, err := f.products.GetByID(p.ID)
	require.NoError(t, err)
	assert.True(t, got.Stock.Equal(decimal.NewFromInt(7)), "el stock quedó descontado")
}

// Sin stock suficiente, la venta entera se rechaza y nada queda a medias.
func TestSale_Create_StockInsuficienteNoDescuentaNada(t *testing.T) {
	f := newSaleFixture(t)
	conStock := f.seedProduct(t, "Pan", 10, 200)
	sinStock := f.seedProduct(t, "Leche", 1, 800)

	_, err := f.sales.Create(dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: conStock.ID, Quantity: decimal.NewFromInt(2)},
			{ProductID: sinStock.ID, Quantity: decimal.NewFromInt(5)},
		},
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, err := f.products.GetByID(conStock.ID)
	require.NoError(t, err)
	assert.True(t, got.Stock.Equal(decimal.NewFromInt(10)),
		"la transacción revierte también las líneas anteriores")
}

func TestSale_Create_Validaciones(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Pan", 10, 200)

	_, err := f.sales.Create(dto.CreateSaleRequest{PaymentMethod: entity.PaymentCash})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")

	_, err = f.sales.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: p.ID, Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: "CHEQUE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "medio de pago fuera de la enumeración")

	_, err = f.sales.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: p.ID, Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: entity.PaymentCash,
		Credit:        true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fiado sin cliente")
}

func TestSale_Create_FiadoRequiereClienteExistente(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Pan", 10, 200)

	_, err := f.sales.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: p.ID, Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: entity.PaymentCash,
		Credit:        true,
		CustomerID:    "NADIE-00000",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSale_Fiado_PagosParcialesHastaSaldar(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Yerba", 10, 1000)

	customer, err := f.customers.Create(dto.CreateCustomerRequest{Name: "Carlos"})
	require.NoError(t, err)

	sale, err := f.sales.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: p.ID, Quantity: decimal.NewFromInt(2)}},
		PaymentMethod: entity.PaymentCash,
		Credit:        true,
		CustomerID:    customer.ID,
	})
	require.NoError(t, err)
	assert.False(t, sale.Paid, "un fiado nace impago")
	assert.Equal(t, "CARLOS", sale.CustomerName)

	// Primer pago parcial: sigue pendiente.
	first, err := f.sales.RegisterPayment(sale.ID, dto.PaymentRequest{Amount: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.False(t, first.Paid)
	assert.True(t, first.Pending.Equal(decimal.NewFromInt(1500)))

	// Segundo pago cubre el total: saldada.
	second, err := f.sales.RegisterPayment(sale.ID, dto.PaymentRequest{Amount: decimal.NewFromInt(1500)})
	require.NoError(t, err)
	assert.True(t, second.Paid)
	assert.True(t, second.Pending.Equal(decimal.Zero))

	// Un tercer pago sobre una venta saldada es conflicto.
	_, err = f.sales.RegisterPayment(sale.ID, dto.PaymentRequest{Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSale_RegisterPayment_SoloSobreFiados(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Pan", 10, 200)

	sale, err := f.sales.Create(dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: p.ID, Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	_, err = f.sales.RegisterPayment(sale.ID, dto.PaymentRequest{Amount: decimal.NewFromInt(100)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "una venta de contado no admite pagos")
}

func TestSale_List_MasRecientesPrimero(t *testing.T) {
	f := newSaleFixture(t)
	p := f.seedProduct(t, "Pan", 100, 200)

	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		f.sales.WithClock(fixedClock(at))
		_, err := f.sales.Create(dto.CreateSaleRequest{
			Items:         []dto.SaleItemRequest{{ProductID: p.ID, Quantity: decimal.NewFromInt(1)}},
			PaymentMethod: entity.PaymentCash,
		})
		require.NoError(t, err)
	}

	out, err := f.sales.List(1, 2)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, int64(3), out.Page.Total)
	assert.True(t, out.Items[0].Date.After(out.Items[1].Date), "orden descendente por fecha")
}

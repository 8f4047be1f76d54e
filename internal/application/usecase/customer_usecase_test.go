package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/application/usecase"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/infrastructure/store"
)

func newCustomerUC(t *testing.T) (*usecase.CustomerUseCase, *store.CustomerRepo, *store.SaleRepo) {
	t.Helper()
	db := openTestStore(t)
	customers := store.NewCustomerRepository(db)
	sales := store.NewSaleRepository(db)
	return usecase.NewCustomerUseCase(customers, sales), customers, sales
}

func TestCustomer_Create_NormalizaNombre(t *testing.T) {
	uc, _, _ := newCustomerUC(t)

	out, err := uc.Create(dto.CreateCustomerRequest{Name: "  ana maría  ", Phone: " 1155 "})
	require.NoError(t, err)

	assert.Equal(t, "ANA MARÍA", out.Name, "el nombre se guarda en mayúsculas y sin bordes")
	assert.Equal(t, "1155", out.Phone)
	assert.True(t, strings.HasPrefix(out.ID, "ANA-MARIA-"),
		"el ID nace del slug del nombre: %s", out.ID)
}

// Un nombre ya existente, aun con otras mayúsculas o espacios al borde,
// se rechaza sin tocar la colección.
func TestCustomer_Create_DuplicadoRechazadoSinPersistir(t *testing.T) {
	uc, _, _ := newCustomerUC(t)

	_, err := uc.Create(dto.CreateCustomerRequest{Name: "ANA"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCustomerRequest{Name: "  ana  "})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	list, err := uc.List("", 1, 10)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1, "el duplicado no debe haber persistido nada")
}

func TestCustomer_Create_NombreVacioInvalido(t *testing.T) {
	uc, _, _ := newCustomerUC(t)
	_, err := uc.Create(dto.CreateCustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Mientras exista una venta que referencie al cliente la baja se rechaza,
// incluso con el fiado ya saldado: el histórico referencia por ID.
func TestCustomer_Delete_BloqueadoPorVentasQueLoReferencian(t *testing.T) {
	uc, _, sales := newCustomerUC(t)

	out, err := uc.Create(dto.CreateCustomerRequest{Name: "Carlos"})
	require.NoError(t, err)

	sale := &entity.Sale{
		ID:            1001,
		PaymentMethod: entity.PaymentCash,
		Total:         decimal.NewFromInt(500),
		Date:          time.Now(),
		Credit:        true,
		CustomerID:    out.ID,
		CustomerName:  out.Name,
	}
	require.NoError(t, sales.CreateWithStock(sale))

	err = uc.Delete(out.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerHasCredit)

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "el cliente debe seguir existiendo")

	// Saldar el fiado no habilita la baja: la venta sigue apuntando al cliente.
	require.NoError(t, sales.MarkPaid(sale.ID))
	err = uc.Delete(out.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerHasCredit)

	got, err = uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "la venta paga también bloquea la baja")
}

// Sin ventas que lo referencien, la baja procede normalmente.
func TestCustomer_Delete_SinVentasProcede(t *testing.T) {
	uc, _, _ := newCustomerUC(t)

	out, err := uc.Create(dto.CreateCustomerRequest{Name: "Marta"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID))

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCustomer_Delete_NoExiste(t *testing.T) {
	uc, _, _ := newCustomerUC(t)
	assert.ErrorIs(t, uc.Delete("NADIE-00000"), domain.ErrNotFound)
}

func TestCustomer_List_FiltraPorNombreYTelefono(t *testing.T) {
	uc, _, _ := newCustomerUC(t)

	for _, c := range []dto.CreateCustomerRequest{
		{Name: "Ana", Phone: "11-4444"},
		{Name: "Bruno", Phone: "11-5555"},
		{Name: "Carla", Phone: "351-4444"},
	} {
		_, err := uc.Create(c)
		require.NoError(t, err)
	}

	byName, err := uc.List("ana", 1, 10)
	require.NoError(t, err)
	require.Len(t, byName.Items, 1)
	assert.Equal(t, "ANA", byName.Items[0].Name)

	byPhone, err := uc.List("4444", 1, 10)
	require.NoError(t, err)
	assert.Len(t, byPhone.Items, 2, "el filtro también mira el teléfono")
}

func TestCustomerID_SufijoDelTimestamp(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	id := usecase.CustomerID("Ana María", at)

	require.True(t, strings.HasPrefix(id, "ANA-MARIA-"))
	suffix := strings.TrimPrefix(id, "ANA-MARIA-")
	assert.Len(t, suffix, 5, "el sufijo son los últimos 5 dígitos del timestamp")
}

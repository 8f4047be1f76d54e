package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/application/usecase"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/infrastructure/store"
)

func newSupplierUC(t *testing.T) *usecase.SupplierUseCase {
	t.Helper()
	db := openTestStore(t)
	return usecase.NewSupplierUseCase(store.NewSupplierRepository(db))
}

func TestSupplier_Create_ConContactosYVisitas(t *testing.T) {
	uc := newSupplierUC(t)

	out, err := uc.Create(dto.CreateSupplierRequest{
		CompanyName: "  Distribuidora Norte  ",
		Contacts: []dto.SupplierContactDTO{
			{Name: "Marta", Phone: "11-2222"},
			{Name: "   ", Phone: "ignorado"}, // contacto sin nombre se descarta
		},
		LastVisit: "2026-08-10",
		NextVisit: "2026-08-24",
	})
	require.NoError(t, err)

	assert.Equal(t, "Distribuidora Norte", out.CompanyName)
	require.Len(t, out.Contacts, 1)
	assert.Equal(t, "Marta", out.Contacts[0].Name)
	assert.Equal(t, "2026-08-10", out.LastVisit)
	assert.Equal(t, "2026-08-24", out.NextVisit)
}

func TestSupplier_Create_Validaciones(t *testing.T) {
	uc := newSupplierUC(t)

	_, err := uc.Create(dto.CreateSupplierRequest{CompanyName: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "razón social obligatoria")

	_, err = uc.Create(dto.CreateSupplierRequest{
		CompanyName: "Norte",
		NextVisit:   "el martes",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha de visita con formato inválido")
}

func TestSupplier_List_FiltraPorRazonSocial(t *testing.T) {
	uc := newSupplierUC(t)

	for _, name := range []string{"Distribuidora Norte", "Distribuidora Sur", "Lácteos SA"} {
		_, err := uc.Create(dto.CreateSupplierRequest{CompanyName: name})
		require.NoError(t, err)
	}

	out, err := uc.List("distribuidora", 1, 10)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, int64(2), out.Page.Total)
}

func TestSupplier_Update_ParcialYDelete(t *testing.T) {
	uc := newSupplierUC(t)

	created, err := uc.Create(dto.CreateSupplierRequest{CompanyName: "Norte"})
	require.NoError(t, err)

	visit := "2026-09-01"
	out, err := uc.Update(created.ID, dto.UpdateSupplierRequest{NextVisit: &visit})
	require.NoError(t, err)
	assert.Equal(t, "Norte", out.CompanyName, "los campos no tocados se conservan")
	assert.Equal(t, visit, out.NextVisit)

	require.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}

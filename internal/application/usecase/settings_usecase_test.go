package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosco-api/internal/application/usecase"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/infrastructure/store"
)

func newSettingsUC(t *testing.T) (*usecase.SettingsUseCase, *store.SettingRepo) {
	t.Helper()
	db := openTestStore(t)
	repo := store.NewSettingRepository(db)
	return usecase.NewSettingsUseCase(repo), repo
}

func TestSettings_Theme_LightPorDefecto(t *testing.T) {
	uc, _ := newSettingsUC(t)

	out, err := uc.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, "light", out.Value)
}

func TestSettings_Theme_GuardaYRelee(t *testing.T) {
	uc, _ := newSettingsUC(t)

	_, err := uc.SetTheme("dark")
	require.NoError(t, err)

	out, err := uc.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, "dark", out.Value)

	// Volver a light pisa la preferencia anterior.
	_, err = uc.SetTheme("light")
	require.NoError(t, err)
	out, err = uc.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, "light", out.Value)
}

func TestSettings_Theme_ValorInvalido(t *testing.T) {
	uc, _ := newSettingsUC(t)
	_, err := uc.SetTheme("sepia")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un valor guardado no parseable cuenta como ausente, no como error.
func TestSettings_LastActive_ValorCorruptoEsAusente(t *testing.T) {
	uc, repo := newSettingsUC(t)

	require.NoError(t, repo.Put(&entity.Setting{
		Key:       entity.SettingLastActive,
		Value:     "no-es-una-fecha",
		UpdatedAt: time.Now(),
	}))

	got, err := uc.LastActive()
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestSettings_LastActive_TouchYLectura(t *testing.T) {
	uc, _ := newSettingsUC(t)

	before, err := uc.LastActive()
	require.NoError(t, err)
	assert.True(t, before.IsZero(), "sin marca previa")

	require.NoError(t, uc.TouchLastActive())

	after, err := uc.LastActive()
	require.NoError(t, err)
	assert.False(t, after.IsZero())
}

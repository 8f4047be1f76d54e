package usecase

import (
	"time"

	"github.com/spf13/cast"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

// Temas admitidos.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SettingsUseCase preferencias de la aplicación (tema y estado) sobre la
// colección clave/valor.
type SettingsUseCase struct {
	repo repository.SettingRepository
	now  func() time.Time
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, now: time.Now}
}

// GetTheme devuelve el tema vigente; sin preferencia guardada es light.
func (uc *SettingsUseCase) GetTheme() (*dto.SettingResponse, error) {
	s, err := uc.repo.Get(entity.SettingTheme)
	if err != nil {
		return nil, err
	}
	value := ThemeLight
	if s != nil {
		if v := cast.ToString(s.Value); v == ThemeDark {
			value = ThemeDark
		}
	}
	return &dto.SettingResponse{Key: entity.SettingTheme, Value: value}, nil
}

// SetTheme guarda el tema; solo acepta light o dark.
func (uc *SettingsUseCase) SetTheme(value string) (*dto.SettingResponse, error) {
	if value != ThemeLight && value != ThemeDark {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.put(entity.SettingTheme, value); err != nil {
		return nil, err
	}
	return &dto.SettingResponse{Key: entity.SettingTheme, Value: value}, nil
}

// TouchLastActive registra la última actividad (la usa el job de trial).
func (uc *SettingsUseCase) TouchLastActive() error {
	return uc.put(entity.SettingLastActive, uc.now().Format(time.RFC3339))
}

// LastActive devuelve la última actividad registrada, o cero si no hay.
func (uc *SettingsUseCase) LastActive() (time.Time, error) {
	s, err := uc.repo.Get(entity.SettingLastActive)
	if err != nil {
		return time.Time{}, err
	}
	if s == nil {
		return time.Time{}, nil
	}
	// Coerción laxa: un valor corrupto cuenta como ausente, no como error.
	t, err := cast.ToTimeE(s.Value)
	if err != nil {
		return time.Time{}, nil
	}
	return t, nil
}

func (uc *SettingsUseCase) put(key, value string) error {
	return uc.repo.Put(&entity.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: uc.now(),
	})
}

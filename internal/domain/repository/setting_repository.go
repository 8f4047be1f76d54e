package repository

import "github.com/jhoicas/kiosco-api/internal/domain/entity"

// SettingRepository persiste preferencias clave/valor (tema, estado de la app).
type SettingRepository interface {
	Get(key string) (*entity.Setting, error)
	Put(setting *entity.Setting) error
}

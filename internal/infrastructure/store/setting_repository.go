package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación de SettingRepository sobre el almacén local.
type SettingRepo struct {
	db *gorm.DB
}

// NewSettingRepository construye el adaptador.
func NewSettingRepository(db *gorm.DB) *SettingRepo {
	return &SettingRepo{db: db}
}

// Get obtiene una preferencia por clave. Devuelve (nil, nil) si no existe.
func (r *SettingRepo) Get(key string) (*entity.Setting, error) {
	var s entity.Setting
	err := r.db.First(&s, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// Put inserta o reemplaza la preferencia (upsert por clave).
func (r *SettingRepo) Put(setting *entity.Setting) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return fmt.Errorf("put setting: %w", err)
	}
	return nil
}

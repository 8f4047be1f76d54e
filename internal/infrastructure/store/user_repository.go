package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
)

var (
	_ repository.UserRepository  = (*UserRepo)(nil)
	_ repository.TrialRepository = (*TrialRepo)(nil)
)

// UserRepo implementación de UserRepository sobre el almacén local.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepository construye el adaptador.
func NewUserRepository(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	var u entity.User
	err := r.db.First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// FindByUsername busca por nombre de usuario (índice único).
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	err := r.db.First(&u, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// TrialRepo implementación de TrialRepository sobre el almacén local.
type TrialRepo struct {
	db *gorm.DB
}

// NewTrialRepository construye el adaptador.
func NewTrialRepository(db *gorm.DB) *TrialRepo {
	return &TrialRepo{db: db}
}

// Get obtiene el registro de trial del usuario. Devuelve (nil, nil) si no existe.
func (r *TrialRepo) Get(userID string) (*entity.TrialPeriod, error) {
	var t entity.TrialPeriod
	err := r.db.First(&t, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trial: %w", err)
	}
	return &t, nil
}

// Put inserta o reemplaza el registro de trial (upsert por clave primaria).
func (r *TrialRepo) Put(trial *entity.TrialPeriod) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"first_access"}),
	}).Create(trial).Error
	if err != nil {
		return fmt.Errorf("put trial: %w", err)
	}
	return nil
}

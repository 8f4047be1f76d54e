package repository

import "github.com/jhoicas/kiosco-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
}

// TrialRepository persiste el registro de período de prueba por usuario.
type TrialRepository interface {
	Get(userID string) (*entity.TrialPeriod, error)
	Put(trial *entity.TrialPeriod) error
}

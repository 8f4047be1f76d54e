package store

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/kiosco-api/internal/domain/entity"
)

// Open abre (o crea) el almacén local embebido y aplica el esquema.
// path ":memory:" crea una base efímera para tests.
// AutoMigrate hace las veces de migración versionada: el esquema de cada
// colección es explícito en los structs de entity y se valida al abrir.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true, // violaciones de unicidad como gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("abrir almacén %s: %w", path, err)
	}
	if err := db.AutoMigrate(
		&entity.Product{},
		&entity.Customer{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Payment{},
		&entity.User{},
		&entity.TrialPeriod{},
		&entity.Setting{},
		&entity.Supplier{},
		&entity.CashRegister{},
		&entity.CashMovement{},
	); err != nil {
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}
	return db, nil
}

package infra

import (
	"fmt"

	"github.com/21edclique/preciosMayorista/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection backed by pgx, runs AutoMigrate for the
// full schema and seeds the fixed rows (roles, naves) the system assumes
// exist. TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey instead of a driver error string.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the schema and seed data. Exported separately so the
// integration tests can run it against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Rol{},
		&model.Usuario{},
		&model.Producto{},
		&model.Presentacion{},
		&model.PrecioDiario{},
		&model.Nave{},
		&model.Camara{},
		&model.Bitacora{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return seedBase(db)
}

// seedBase inserts the rows every deployment needs. Idempotent: existing
// rows are left untouched.
func seedBase(db *gorm.DB) error {
	roles := []model.Rol{
		{ID: model.RolAdministrador, NombreRol: "Administrador"},
		{ID: 2, NombreRol: "Digitador"},
	}
	for _, rol := range roles {
		if err := db.Where(model.Rol{ID: rol.ID}).FirstOrCreate(&rol).Error; err != nil {
			return fmt.Errorf("seed rol %q: %w", rol.NombreRol, err)
		}
	}
	return nil
}

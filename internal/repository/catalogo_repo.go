package repository

import (
	"context"

	"github.com/21edclique/preciosMayorista/internal/model"

	"gorm.io/gorm"
)

// CatalogoRepository serves the read-only hall/camera catalogs that feed
// the bitácora form dropdowns.
type CatalogoRepository interface {
	ListNaves(ctx context.Context) ([]model.Nave, error)
	ListCamaras(ctx context.Context) ([]model.Camara, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) ListNaves(ctx context.Context) ([]model.Nave, error) {
	var naves []model.Nave
	err := r.db.WithContext(ctx).Order("sector ASC, nombre ASC").Find(&naves).Error
	return naves, err
}

func (r *catalogoRepo) ListCamaras(ctx context.Context) ([]model.Camara, error) {
	var camaras []model.Camara
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&camaras).Error
	return camaras, err
}

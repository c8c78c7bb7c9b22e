package repository

import (
	"context"
	"time"

	"github.com/21edclique/preciosMayorista/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrecioRepository interface {
	Create(ctx context.Context, p *model.PrecioDiario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PrecioDiario, error)
	// List returns every price row with product and presentation preloaded,
	// newest day first then insertion order, matching the getprecio join.
	List(ctx context.Context) ([]model.PrecioDiario, error)
	// ListByFecha filters by exact calendar-day equality.
	ListByFecha(ctx context.Context, fecha time.Time) ([]model.PrecioDiario, error)
	Update(ctx context.Context, p *model.PrecioDiario) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type precioRepo struct{ db *gorm.DB }

func NewPrecioRepository(db *gorm.DB) PrecioRepository { return &precioRepo{db: db} }

func (r *precioRepo) Create(ctx context.Context, p *model.PrecioDiario) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *precioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PrecioDiario, error) {
	var p model.PrecioDiario
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Presentacion").
		First(&p, id).Error
	return &p, err
}

func (r *precioRepo) List(ctx context.Context) ([]model.PrecioDiario, error) {
	var precios []model.PrecioDiario
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Presentacion").
		Order("fecha DESC, created_at DESC").
		Find(&precios).Error
	return precios, err
}

func (r *precioRepo) ListByFecha(ctx context.Context, fecha time.Time) ([]model.PrecioDiario, error) {
	var precios []model.PrecioDiario
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Presentacion").
		Where("fecha = ?", fecha.Format("2006-01-02")).
		Order("created_at ASC").
		Find(&precios).Error
	return precios, err
}

func (r *precioRepo) Update(ctx context.Context, p *model.PrecioDiario) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *precioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PrecioDiario{}, id).Error
}

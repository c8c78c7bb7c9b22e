package repository

import (
	"context"

	"github.com/21edclique/preciosMayorista/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BitacoraRepository interface {
	Create(ctx context.Context, b *model.Bitacora) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Bitacora, error)
	// List returns every entry newest-first. Pagination happens client-side,
	// so the data layer stays unpaginated.
	List(ctx context.Context) ([]model.Bitacora, error)
	Update(ctx context.Context, b *model.Bitacora) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bitacoraRepo struct{ db *gorm.DB }

func NewBitacoraRepository(db *gorm.DB) BitacoraRepository { return &bitacoraRepo{db: db} }

func (r *bitacoraRepo) Create(ctx context.Context, b *model.Bitacora) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bitacoraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Bitacora, error) {
	var b model.Bitacora
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Colega").Preload("Nave").
		First(&b, id).Error
	return &b, err
}

func (r *bitacoraRepo) List(ctx context.Context) ([]model.Bitacora, error) {
	var entries []model.Bitacora
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Colega").Preload("Nave").
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *bitacoraRepo) Update(ctx context.Context, b *model.Bitacora) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *bitacoraRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Bitacora{}, id).Error
}

package repository

import (
	"context"

	"github.com/21edclique/preciosMayorista/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PresentacionRepository interface {
	Create(ctx context.Context, p *model.Presentacion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Presentacion, error)
	List(ctx context.Context, soloActivos bool) ([]model.Presentacion, error)
	Update(ctx context.Context, p *model.Presentacion) error
	CambiarEstado(ctx context.Context, id uuid.UUID, activo bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountPrecios(ctx context.Context, id uuid.UUID) (int64, error)
}

type presentacionRepo struct{ db *gorm.DB }

func NewPresentacionRepository(db *gorm.DB) PresentacionRepository {
	return &presentacionRepo{db: db}
}

func (r *presentacionRepo) Create(ctx context.Context, p *model.Presentacion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *presentacionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Presentacion, error) {
	var p model.Presentacion
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *presentacionRepo) List(ctx context.Context, soloActivos bool) ([]model.Presentacion, error) {
	var presentaciones []model.Presentacion
	q := r.db.WithContext(ctx).Model(&model.Presentacion{})
	if soloActivos {
		q = q.Where("activo = true")
	}
	err := q.Order("nombre ASC").Find(&presentaciones).Error
	return presentaciones, err
}

func (r *presentacionRepo) Update(ctx context.Context, p *model.Presentacion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *presentacionRepo) CambiarEstado(ctx context.Context, id uuid.UUID, activo bool) error {
	return r.db.WithContext(ctx).Model(&model.Presentacion{}).Where("id = ?", id).Update("activo", activo).Error
}

func (r *presentacionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Presentacion{}, id).Error
}

func (r *presentacionRepo) CountPrecios(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PrecioDiario{}).Where("presentacion_id = ?", id).Count(&n).Error
	return n, err
}

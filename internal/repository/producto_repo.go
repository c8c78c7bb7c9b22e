package repository

import (
	"context"

	"github.com/21edclique/preciosMayorista/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, soloActivos bool) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	CambiarEstado(ctx context.Context, id uuid.UUID, activo bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CountPrecios reports how many price records reference the product.
	// Deletion is restricted while the count is non-zero.
	CountPrecios(ctx context.Context, id uuid.UUID) (int64, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, soloActivos bool) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Model(&model.Producto{})
	if soloActivos {
		q = q.Where("activo = true")
	}
	err := q.Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) CambiarEstado(ctx context.Context, id uuid.UUID, activo bool) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", activo).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, id).Error
}

func (r *productoRepo) CountPrecios(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PrecioDiario{}).Where("producto_id = ?", id).Count(&n).Error
	return n, err
}

package repository

import (
	"context"

	"github.com/21edclique/preciosMayorista/internal/model"

	"gorm.io/gorm"
)

type RolRepository interface {
	Create(ctx context.Context, rol *model.Rol) error
	List(ctx context.Context) ([]model.Rol, error)
	FindByID(ctx context.Context, id uint) (*model.Rol, error)
}

type rolRepo struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepo{db: db} }

func (r *rolRepo) Create(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Create(rol).Error
}

func (r *rolRepo) List(ctx context.Context) ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) FindByID(ctx context.Context, id uint) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).First(&rol, id).Error
	return &rol, err
}

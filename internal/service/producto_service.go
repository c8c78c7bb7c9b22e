package service

import (
	"context"
	"errors"

	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/model"
	"github.com/21edclique/preciosMayorista/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoService defines the business logic contract for the product catalog.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearCatalogoRequest) (*dto.CatalogoResponse, error)
	Listar(ctx context.Context, soloActivos bool) ([]dto.CatalogoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCatalogoRequest) (*dto.CatalogoResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, activo bool) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func mapProducto(p *model.Producto) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: p.ID.String(), Nombre: p.Nombre, Activo: p.Activo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearCatalogoRequest) (*dto.CatalogoResponse, error) {
	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	p := &model.Producto{Nombre: req.Nombre, Activo: activo}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProducto(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, soloActivos bool) ([]dto.CatalogoResponse, error) {
	productos, err := s.repo.List(ctx, soloActivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CatalogoResponse, len(productos))
	for i := range productos {
		resp[i] = mapProducto(&productos[i])
	}
	return resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCatalogoRequest) (*dto.CatalogoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	p.Nombre = req.Nombre
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProducto(p)
	return &resp, nil
}

func (s *productoService) CambiarEstado(ctx context.Context, id uuid.UUID, activo bool) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNoEncontrado
	}
	return s.repo.CambiarEstado(ctx, id, activo)
}

// Eliminar restricts deletion while daily prices reference the product.
// Orphaning history rows would break the derived reports.
func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNoEncontrado
	}
	n, err := s.repo.CountPrecios(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrReferenciado
	}
	return s.repo.Delete(ctx, id)
}

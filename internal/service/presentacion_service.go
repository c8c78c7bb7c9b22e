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

// PresentacionService mirrors ProductoService for the unit-of-sale catalog.
type PresentacionService interface {
	Crear(ctx context.Context, req dto.CrearCatalogoRequest) (*dto.CatalogoResponse, error)
	Listar(ctx context.Context, soloActivos bool) ([]dto.CatalogoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCatalogoRequest) (*dto.CatalogoResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, activo bool) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type presentacionService struct {
	repo repository.PresentacionRepository
}

func NewPresentacionService(repo repository.PresentacionRepository) PresentacionService {
	return &presentacionService{repo: repo}
}

func mapPresentacion(p *model.Presentacion) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: p.ID.String(), Nombre: p.Nombre, Activo: p.Activo}
}

func (s *presentacionService) Crear(ctx context.Context, req dto.CrearCatalogoRequest) (*dto.CatalogoResponse, error) {
	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	p := &model.Presentacion{Nombre: req.Nombre, Activo: activo}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapPresentacion(p)
	return &resp, nil
}

func (s *presentacionService) Listar(ctx context.Context, soloActivos bool) ([]dto.CatalogoResponse, error) {
	presentaciones, err := s.repo.List(ctx, soloActivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CatalogoResponse, len(presentaciones))
	for i := range presentaciones {
		resp[i] = mapPresentacion(&presentaciones[i])
	}
	return resp, nil
}

func (s *presentacionService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCatalogoRequest) (*dto.CatalogoResponse, error) {
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
	resp := mapPresentacion(p)
	return &resp, nil
}

func (s *presentacionService) CambiarEstado(ctx context.Context, id uuid.UUID, activo bool) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNoEncontrado
	}
	return s.repo.CambiarEstado(ctx, id, activo)
}

func (s *presentacionService) Eliminar(ctx context.Context, id uuid.UUID) error {
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

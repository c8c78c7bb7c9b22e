package service

import (
	"context"

	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/repository"
)

// CatalogoService exposes the read-only market layout: naves and their
// cold-storage cámaras. Both are seeded at install time and never edited
// through the API.
type CatalogoService interface {
	ListarNaves(ctx context.Context) ([]dto.NaveResponse, error)
	ListarCamaras(ctx context.Context) ([]dto.CamaraResponse, error)
}

type catalogoService struct {
	repo repository.CatalogoRepository
}

func NewCatalogoService(repo repository.CatalogoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func (s *catalogoService) ListarNaves(ctx context.Context) ([]dto.NaveResponse, error) {
	naves, err := s.repo.ListNaves(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NaveResponse, len(naves))
	for i, n := range naves {
		resp[i] = dto.NaveResponse{
			ID:        n.ID.String(),
			Nombre:    n.Nombre,
			Sector:    n.Sector,
			Productos: n.Productos,
		}
	}
	return resp, nil
}

func (s *catalogoService) ListarCamaras(ctx context.Context) ([]dto.CamaraResponse, error) {
	camaras, err := s.repo.ListCamaras(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CamaraResponse, len(camaras))
	for i, c := range camaras {
		resp[i] = dto.CamaraResponse{
			ID:     c.ID.String(),
			Nombre: c.Nombre,
			NaveID: c.NaveID.String(),
		}
	}
	return resp, nil
}

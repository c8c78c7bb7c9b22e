package service

import (
	"context"
	"errors"
	"time"

	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/model"
	"github.com/21edclique/preciosMayorista/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const fechaLayout = "2006-01-02"

// PrecioService manages daily price submissions. Any authenticated user may
// create; update and delete are admin-gated at the route level.
type PrecioService interface {
	Crear(ctx context.Context, req dto.CrearPrecioRequest) (*dto.PrecioResponse, error)
	Listar(ctx context.Context, filter dto.PrecioFilter) ([]dto.PrecioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPrecioRequest) (*dto.PrecioResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type precioService struct {
	precios        repository.PrecioRepository
	productos      repository.ProductoRepository
	presentaciones repository.PresentacionRepository
}

func NewPrecioService(
	precios repository.PrecioRepository,
	productos repository.ProductoRepository,
	presentaciones repository.PresentacionRepository,
) PrecioService {
	return &precioService{precios: precios, productos: productos, presentaciones: presentaciones}
}

// MapPrecio flattens a row into the joined response shape. Exported because
// the reporting service and export worker reuse it.
func MapPrecio(p *model.PrecioDiario) dto.PrecioResponse {
	return dto.PrecioResponse{
		ID:                 p.ID.String(),
		ProductoID:         p.ProductoID.String(),
		PresentacionID:     p.PresentacionID.String(),
		Fecha:              p.Fecha.Format(fechaLayout),
		Peso:               p.Peso,
		Precio:             p.Precio,
		ProductoNombre:     p.Producto.Nombre,
		PresentacionNombre: p.Presentacion.Nombre,
	}
}

func (s *precioService) Crear(ctx context.Context, req dto.CrearPrecioRequest) (*dto.PrecioResponse, error) {
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	presentacionID, err := uuid.Parse(req.PresentacionID)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	fecha, err := time.Parse(fechaLayout, req.Fecha)
	if err != nil {
		return nil, err
	}

	// FK existence is the only validation beyond field presence.
	if _, err := s.productos.FindByID(ctx, productoID); err != nil {
		return nil, ErrNoEncontrado
	}
	if _, err := s.presentaciones.FindByID(ctx, presentacionID); err != nil {
		return nil, ErrNoEncontrado
	}

	p := &model.PrecioDiario{
		ProductoID:     productoID,
		PresentacionID: presentacionID,
		Fecha:          fecha,
		Peso:           req.Peso,
		Precio:         req.Precio,
	}
	if err := s.precios.Create(ctx, p); err != nil {
		return nil, err
	}

	created, err := s.precios.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := MapPrecio(created)
	return &resp, nil
}

func (s *precioService) Listar(ctx context.Context, filter dto.PrecioFilter) ([]dto.PrecioResponse, error) {
	var rows []model.PrecioDiario
	var err error
	if filter.Fecha != "" {
		var fecha time.Time
		fecha, err = time.Parse(fechaLayout, filter.Fecha)
		if err != nil {
			return nil, err
		}
		rows, err = s.precios.ListByFecha(ctx, fecha)
	} else {
		rows, err = s.precios.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PrecioResponse, len(rows))
	for i := range rows {
		resp[i] = MapPrecio(&rows[i])
	}
	return resp, nil
}

// Actualizar replaces presentacion, peso and precio. Product and date stay
// as created.
func (s *precioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPrecioRequest) (*dto.PrecioResponse, error) {
	p, err := s.precios.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	presentacionID, err := uuid.Parse(req.PresentacionID)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	if _, err := s.presentaciones.FindByID(ctx, presentacionID); err != nil {
		return nil, ErrNoEncontrado
	}

	p.PresentacionID = presentacionID
	p.Peso = req.Peso
	p.Precio = req.Precio
	if err := s.precios.Update(ctx, p); err != nil {
		return nil, err
	}

	updated, err := s.precios.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := MapPrecio(updated)
	return &resp, nil
}

func (s *precioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.precios.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	return s.precios.Delete(ctx, id)
}

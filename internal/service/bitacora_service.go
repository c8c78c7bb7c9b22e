package service

import (
	"context"
	"errors"
	"time"

	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/middleware"
	"github.com/21edclique/preciosMayorista/internal/model"
	"github.com/21edclique/preciosMayorista/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VentanaEdicion is how long the author of a bitácora entry may keep
// editing it. Administrators are never subject to the window.
const VentanaEdicion = 9 * time.Hour

// BitacoraService owns the activity-log lifecycle: the author-scoped edit
// window, the admin-only delete, and the one-way resolve transition.
type BitacoraService interface {
	Crear(ctx context.Context, claims *middleware.JWTClaims, req dto.CrearBitacoraRequest) (*dto.BitacoraResponse, error)
	Listar(ctx context.Context) ([]dto.BitacoraResponse, error)
	Actualizar(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID, req dto.ActualizarBitacoraRequest) (*dto.BitacoraResponse, error)
	Eliminar(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID) error
	Resolver(ctx context.Context, id uuid.UUID) (*dto.BitacoraResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.BitacoraResponse, error)
}

type bitacoraService struct {
	repo repository.BitacoraRepository
	now  func() time.Time
}

func NewBitacoraService(repo repository.BitacoraRepository) BitacoraService {
	return &bitacoraService{repo: repo, now: time.Now}
}

// CombinarFechaHora joins the stored calendar day and "HH:MM:SS" time into
// one instant, in server local time.
func CombinarFechaHora(fecha time.Time, hora string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02T15:04:05", fecha.Format(fechaLayout)+"T"+hora, time.Local)
}

// PuedeEditar reproduces the edit authorization rule:
// administrators always may; non-authors never may; the author may while
// the entry is at most nine hours old.
func PuedeEditar(entry *model.Bitacora, claims *middleware.JWTClaims, now time.Time) bool {
	if claims.EsAdministrador() {
		return true
	}
	if entry.UsuarioID != claims.UsuarioID() {
		return false
	}
	creada, err := CombinarFechaHora(entry.Fecha, entry.Hora)
	if err != nil {
		return false
	}
	return now.Sub(creada) <= VentanaEdicion
}

func mapBitacora(b *model.Bitacora) dto.BitacoraResponse {
	resp := dto.BitacoraResponse{
		ID:         b.ID.String(),
		Fecha:      b.Fecha.Format(fechaLayout),
		Hora:       b.Hora,
		UsuarioID:  b.UsuarioID.String(),
		Nombres:    b.Usuario.Nombres,
		NaveID:     b.NaveID.String(),
		NombreNave: b.Nave.Nombre,
		Camara:     b.Camara,
		Turno:      b.Turno,
		Novedad:    b.Novedad,
		Resultado:  b.Resultado,
		Referencia: b.Referencia,
	}
	if b.ColegaID != nil {
		s := b.ColegaID.String()
		resp.ColegaID = &s
	}
	if b.Colega != nil {
		resp.NombreColega = &b.Colega.Nombres
	}
	return resp
}

// Crear registers a new entry. The caller is always the author, regardless
// of what the payload claims.
func (s *bitacoraService) Crear(ctx context.Context, claims *middleware.JWTClaims, req dto.CrearBitacoraRequest) (*dto.BitacoraResponse, error) {
	fecha, err := time.Parse(fechaLayout, req.Fecha)
	if err != nil {
		return nil, err
	}
	naveID, err := uuid.Parse(req.NaveID)
	if err != nil {
		return nil, ErrNoEncontrado
	}

	b := &model.Bitacora{
		Fecha:      fecha,
		Hora:       req.Hora,
		UsuarioID:  claims.UsuarioID(),
		NaveID:     naveID,
		Camara:     req.Camara,
		Turno:      req.Turno,
		Novedad:    req.Novedad,
		Resultado:  req.Resultado,
		Referencia: req.Referencia,
	}
	if req.ColegaID != nil {
		colegaID, err := uuid.Parse(*req.ColegaID)
		if err != nil {
			return nil, ErrNoEncontrado
		}
		b.ColegaID = &colegaID
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	created, err := s.repo.FindByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	resp := mapBitacora(created)
	return &resp, nil
}

func (s *bitacoraService) Listar(ctx context.Context) ([]dto.BitacoraResponse, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BitacoraResponse, len(entries))
	for i := range entries {
		resp[i] = mapBitacora(&entries[i])
	}
	return resp, nil
}

// Actualizar replaces the mutable fields. The edit window is checked
// server-side on every call, not just in the UI.
func (s *bitacoraService) Actualizar(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID, req dto.ActualizarBitacoraRequest) (*dto.BitacoraResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	if !PuedeEditar(b, claims, s.now()) {
		return nil, ErrNoAutorizado
	}

	fecha, err := time.Parse(fechaLayout, req.Fecha)
	if err != nil {
		return nil, err
	}
	naveID, err := uuid.Parse(req.NaveID)
	if err != nil {
		return nil, ErrNoEncontrado
	}

	b.Fecha = fecha
	b.Hora = req.Hora
	b.NaveID = naveID
	b.Camara = req.Camara
	b.Turno = req.Turno
	b.Novedad = req.Novedad
	b.Resultado = req.Resultado
	b.Referencia = req.Referencia
	b.ColegaID = nil
	if req.ColegaID != nil {
		colegaID, err := uuid.Parse(*req.ColegaID)
		if err != nil {
			return nil, ErrNoEncontrado
		}
		b.ColegaID = &colegaID
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapBitacora(updated)
	return &resp, nil
}

func (s *bitacoraService) Eliminar(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID) error {
	if !claims.EsAdministrador() {
		return ErrNoAutorizado
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Resolver advances the outcome to "Resuelto" unconditionally: any
// authenticated user, any age of entry. Resolving an already resolved
// entry is a no-op, and nothing ever transitions out of "Resuelto" here.
func (s *bitacoraService) Resolver(ctx context.Context, id uuid.UUID) (*dto.BitacoraResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	if b.Resultado != model.ResultadoResuelto {
		b.Resultado = model.ResultadoResuelto
		if err := s.repo.Update(ctx, b); err != nil {
			return nil, err
		}
	}
	resp := mapBitacora(b)
	return &resp, nil
}

func (s *bitacoraService) Obtener(ctx context.Context, id uuid.UUID) (*dto.BitacoraResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	resp := mapBitacora(b)
	return &resp, nil
}

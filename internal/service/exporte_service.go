package service

import (
	"context"
	"time"

	"github.com/21edclique/preciosMayorista/internal/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Estado values an export job moves through. Transitions only ever go
// forward: pendiente -> procesando -> completado|fallido.
const (
	ExporteEstadoPendiente  = "pendiente"
	ExporteEstadoProcesando = "procesando"
	ExporteEstadoCompletado = "completado"
	ExporteEstadoFallido    = "fallido"
)

// ClaveExporte is the Redis hash that tracks one export job. The worker
// writes to the same key as it progresses.
func ClaveExporte(id string) string { return "exporte:" + id }

// EncoladorExportes is the slice of the job dispatcher this service needs.
type EncoladorExportes interface {
	EnqueueExporte(ctx context.Context, payload interface{}) error
}

// ExporteService queues report generation and answers status polls. The
// heavy lifting happens in the worker pool; this layer only touches Redis.
type ExporteService interface {
	Crear(ctx context.Context, req dto.CrearExporteRequest) (*dto.ExporteResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ExporteResponse, error)
}

type exporteService struct {
	rdb       *redis.Client
	encolador EncoladorExportes
	ttl       time.Duration
}

func NewExporteService(rdb *redis.Client, encolador EncoladorExportes, ttl time.Duration) ExporteService {
	return &exporteService{rdb: rdb, encolador: encolador, ttl: ttl}
}

func (s *exporteService) Crear(ctx context.Context, req dto.CrearExporteRequest) (*dto.ExporteResponse, error) {
	id := uuid.New()
	clave := ClaveExporte(id.String())

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, clave, map[string]interface{}{
		"estado":  ExporteEstadoPendiente,
		"formato": req.Formato,
		"fecha":   req.Fecha,
	})
	pipe.Expire(ctx, clave, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	payload := dto.ExporteJobPayload{
		ExporteID: id.String(),
		Fecha:     req.Fecha,
		Formato:   req.Formato,
		Email:     req.Email,
	}
	if err := s.encolador.EnqueueExporte(ctx, payload); err != nil {
		s.rdb.HSet(ctx, clave, "estado", ExporteEstadoFallido, "error", "no se pudo encolar el trabajo")
		return nil, err
	}

	return &dto.ExporteResponse{
		ID:      id.String(),
		Estado:  ExporteEstadoPendiente,
		Formato: req.Formato,
		Fecha:   req.Fecha,
	}, nil
}

func (s *exporteService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ExporteResponse, error) {
	fields, err := s.rdb.HGetAll(ctx, ClaveExporte(id.String())).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNoEncontrado
	}
	return &dto.ExporteResponse{
		ID:      id.String(),
		Estado:  fields["estado"],
		Formato: fields["formato"],
		Fecha:   fields["fecha"],
		Archivo: fields["archivo"],
		Error:   fields["error"],
	}, nil
}

package worker

// export_worker.go
// Processes report generation jobs from QueueExportes: fetches the day's
// prices, renders the requested format, and advances the job's Redis status
// hash. A completed job with an email address also enqueues an email job.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/infra"
	"github.com/21edclique/preciosMayorista/internal/repository"
	"github.com/21edclique/preciosMayorista/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const exportJobTimeout = 60 * time.Second

// ExportWorker turns a queued export request into a file on disk.
type ExportWorker struct {
	precios     repository.PrecioRepository
	rdb         *redis.Client
	dispatcher  *Dispatcher
	storagePath string
}

func NewExportWorker(
	precios repository.PrecioRepository,
	rdb *redis.Client,
	dispatcher *Dispatcher,
	storagePath string,
) *ExportWorker {
	return &ExportWorker{
		precios:     precios,
		rdb:         rdb,
		dispatcher:  dispatcher,
		storagePath: storagePath,
	}
}

// Process handles a single export job:
//  1. Parse ExporteJobPayload from the job envelope
//  2. Mark the status hash "procesando"
//  3. Fetch the day's prices and render the requested format
//  4. Mark "completado" with the artifact path, or "fallido" with the reason
//  5. Enqueue an email job when the requester asked for one
func (w *ExportWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload dto.ExporteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("export_worker: invalid payload")
		return
	}

	clave := service.ClaveExporte(payload.ExporteID)
	w.rdb.HSet(ctx, clave, "estado", service.ExporteEstadoProcesando)

	jobCtx, cancel := context.WithTimeout(ctx, exportJobTimeout)
	defer cancel()

	path, err := w.generar(jobCtx, payload)
	if err != nil {
		log.Error().Err(err).Str("exporte_id", payload.ExporteID).Msg("export_worker: generation failed")
		w.rdb.HSet(ctx, clave, "estado", service.ExporteEstadoFallido, "error", err.Error())
		SendToDLQ(ctx, w.rdb, QueueExportes, "exporte", raw, err.Error(), 1)
		return
	}

	w.rdb.HSet(ctx, clave, "estado", service.ExporteEstadoCompletado, "archivo", path)
	log.Info().Str("exporte_id", payload.ExporteID).Str("archivo", path).Msg("export_worker: report generated")

	if payload.Email != "" {
		emailJob := EmailJobPayload{
			ToEmail:    payload.Email,
			Subject:    fmt.Sprintf("Reporte de precios — %s", payload.Fecha),
			Body:       fmt.Sprintf("Adjunto encontrará el reporte de precios del mercado mayorista correspondiente al %s.", payload.Fecha),
			Attachment: path,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", payload.Email).Msg("export_worker: failed to enqueue email")
		}
	}
}

func (w *ExportWorker) generar(ctx context.Context, payload dto.ExporteJobPayload) (string, error) {
	fecha, err := time.Parse("2006-01-02", payload.Fecha)
	if err != nil {
		return "", fmt.Errorf("fecha invalida: %w", err)
	}

	filas, err := w.precios.ListByFecha(ctx, fecha)
	if err != nil {
		return "", fmt.Errorf("consulta de precios: %w", err)
	}
	rows := make([]dto.PrecioResponse, len(filas))
	for i := range filas {
		rows[i] = service.MapPrecio(&filas[i])
	}

	switch payload.Formato {
	case "xlsx":
		return infra.GenerateReportePreciosXLSX(payload.Fecha, rows, w.storagePath)
	default:
		return infra.GenerateReportePreciosPDF(payload.Fecha, rows, w.storagePath)
	}
}

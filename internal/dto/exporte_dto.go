package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearExporteRequest queues the generation of a downloadable price-report
// artifact for one calendar day. Email is optional: when present, the
// finished file is also mailed as an attachment.
type CrearExporteRequest struct {
	Fecha   string `json:"fecha"   validate:"required,datetime=2006-01-02"`
	Formato string `json:"formato" validate:"required,oneof=pdf xlsx"`
	Email   string `json:"email"   validate:"omitempty,email"`
}

// ExporteJobPayload is the envelope the dispatcher pushes onto the export
// queue. The worker pool is the only consumer.
type ExporteJobPayload struct {
	ExporteID string `json:"exporte_id"`
	Fecha     string `json:"fecha"`
	Formato   string `json:"formato"`
	Email     string `json:"email,omitempty"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// Estado values: "pendiente" | "procesando" | "completado" | "fallido"
type ExporteResponse struct {
	ID      string `json:"id"`
	Estado  string `json:"estado"`
	Formato string `json:"formato"`
	Fecha   string `json:"fecha"`
	Archivo string `json:"archivo,omitempty"`
	Error   string `json:"error,omitempty"`
}

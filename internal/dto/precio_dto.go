package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPrecioRequest struct {
	ProductoID     string          `json:"producto_id"     validate:"required,uuid"`
	PresentacionID string          `json:"id_presentacion" validate:"required,uuid"`
	Fecha          string          `json:"fecha"           validate:"required,datetime=2006-01-02"`
	Peso           decimal.Decimal `json:"peso"            validate:"required"`
	Precio         decimal.Decimal `json:"precio"          validate:"required"`
}

// ActualizarPrecioRequest omits producto_id and fecha: both are immutable
// after creation.
type ActualizarPrecioRequest struct {
	PresentacionID string          `json:"id_presentacion" validate:"required,uuid"`
	Peso           decimal.Decimal `json:"peso"            validate:"required"`
	Precio         decimal.Decimal `json:"precio"          validate:"required"`
}

type PrecioFilter struct {
	// Fecha filters by exact day equality, not a range.
	Fecha string `form:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// PrecioResponse carries the product and presentation names alongside the
// raw ids so listings need no extra lookups.
type PrecioResponse struct {
	ID                 string          `json:"id"`
	ProductoID         string          `json:"producto_id"`
	PresentacionID     string          `json:"id_presentacion_per"`
	Fecha              string          `json:"fecha"`
	Peso               decimal.Decimal `json:"peso"`
	Precio             decimal.Decimal `json:"precio"`
	ProductoNombre     string          `json:"producto_nombre"`
	PresentacionNombre string          `json:"presentacion_nombre"`
}

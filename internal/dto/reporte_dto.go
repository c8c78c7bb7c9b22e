package dto

import "github.com/shopspring/decimal"

// ResumenProducto is the derived per-product view: latest recorded price,
// the previous one, and the percentage variation between them.
type ResumenProducto struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	PrecioActual   decimal.Decimal `json:"precio_actual"`
	PrecioAnterior decimal.Decimal `json:"precio_anterior"`
	VariacionPct   float64         `json:"variacion_pct"`
	FechaActual    string          `json:"fecha_actual"`
}

// DashboardResponse feeds the frontend home page metric cards.
type DashboardResponse struct {
	TotalProductos      int              `json:"total_productos"`
	TotalPresentaciones int              `json:"total_presentaciones"`
	PrecioPromedio      decimal.Decimal  `json:"precio_promedio"`
	UltimosPrecios      []PrecioResponse `json:"ultimos_precios"`
}

package dto

// ─── Productos / Presentaciones ──────────────────────────────────────────────
// Both catalogs share the same lifecycle shape: create with a name, rename,
// toggle the estado flag, delete when unreferenced.

type CrearCatalogoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=120"`
	Activo *bool  `json:"estado"`
}

type ActualizarCatalogoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=120"`
}

type CambiarEstadoRequest struct {
	Activo *bool `json:"estado" validate:"required"`
}

type CatalogoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"estado"`
}

// ─── Naves / Camaras ─────────────────────────────────────────────────────────

type NaveResponse struct {
	ID        string `json:"id_nave"`
	Nombre    string `json:"nombre"`
	Sector    int    `json:"sector"`
	Productos string `json:"productos"`
}

type CamaraResponse struct {
	ID     string `json:"id_camara"`
	Nombre string `json:"nombre"`
	NaveID string `json:"id_nave_per"`
}

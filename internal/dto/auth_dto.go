package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Usuario  string `json:"usuario"  validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=4"`
}

type CrearUsuarioRequest struct {
	Nombres  string `json:"nombres"  validate:"required,min=2,max=100"`
	Usuario  string `json:"usuario"  validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=8"`
	RolID    uint   `json:"id_rol"   validate:"required,min=1"`
}

type ActualizarUsuarioRequest struct {
	Nombres  string `json:"nombres"  validate:"omitempty,min=2,max=100"`
	Usuario  string `json:"usuario"  validate:"omitempty,min=1,max=150"`
	Password string `json:"password" validate:"omitempty,min=8"`
	RolID    uint   `json:"id_rol"   validate:"omitempty,min=1"`
}

type CrearRolRequest struct {
	NombreRol string `json:"nombre_rol" validate:"required,min=2,max=60"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse is the public user profile. The password hash is never
// serialized.
type UsuarioResponse struct {
	ID        string `json:"id"`
	Nombres   string `json:"nombres"`
	Usuario   string `json:"usuario"`
	RolID     uint   `json:"id_rol"`
	NombreRol string `json:"nombre_rol,omitempty"`
	Activo    bool   `json:"activo"`
}

type LoginResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    UsuarioResponse `json:"userData"`
}

type RolResponse struct {
	ID        uint   `json:"id"`
	NombreRol string `json:"nombre_rol"`
}

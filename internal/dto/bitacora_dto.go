package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearBitacoraRequest carries every field of the entry form. The author is
// always taken from the token, never from the payload.
type CrearBitacoraRequest struct {
	Fecha      string  `json:"fecha"      validate:"required,datetime=2006-01-02"`
	Hora       string  `json:"hora"       validate:"required,datetime=15:04:05"`
	ColegaID   *string `json:"id_colega"  validate:"omitempty,uuid"`
	NaveID     string  `json:"id_nave_per" validate:"required,uuid"`
	Camara     string  `json:"camara"     validate:"required"`
	Turno      int     `json:"turno"      validate:"required,min=1,max=3"`
	Novedad    string  `json:"novedad"    validate:"required"`
	Resultado  string  `json:"resultado"  validate:"required,oneof=Pendiente Resuelto 'No Resuelto'"`
	Referencia string  `json:"referencia" validate:"required"`
}

// ActualizarBitacoraRequest is a full replace of the mutable fields.
type ActualizarBitacoraRequest struct {
	Fecha      string  `json:"fecha"      validate:"required,datetime=2006-01-02"`
	Hora       string  `json:"hora"       validate:"required,datetime=15:04:05"`
	ColegaID   *string `json:"id_colega"  validate:"omitempty,uuid"`
	NaveID     string  `json:"id_nave_per" validate:"required,uuid"`
	Camara     string  `json:"camara"     validate:"required"`
	Turno      int     `json:"turno"      validate:"required,min=1,max=3"`
	Novedad    string  `json:"novedad"    validate:"required"`
	Resultado  string  `json:"resultado"  validate:"required,oneof=Pendiente Resuelto 'No Resuelto'"`
	Referencia string  `json:"referencia" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BitacoraResponse struct {
	ID            string  `json:"id_bitacora"`
	Fecha         string  `json:"fecha"`
	Hora          string  `json:"hora"`
	UsuarioID     string  `json:"id_usuario_per"`
	Nombres       string  `json:"nombres"`
	ColegaID      *string `json:"id_colega"`
	NombreColega  *string `json:"nombre_colega"`
	NaveID        string  `json:"id_nave_per"`
	NombreNave    string  `json:"nombre"`
	Camara        string  `json:"camara"`
	Turno         int     `json:"turno"`
	Novedad       string  `json:"novedad"`
	Resultado     string  `json:"resultado"`
	Referencia    string  `json:"referencia"`
}

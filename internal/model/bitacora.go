package model

import (
	"time"

	"github.com/google/uuid"
)

// Resultado values for a Bitacora entry. "Resuelto" is terminal for the
// dedicated resolve action: resolving twice is a no-op.
const (
	ResultadoPendiente  = "Pendiente"
	ResultadoResuelto   = "Resuelto"
	ResultadoNoResuelto = "No Resuelto"
)

// Bitacora is an operational log entry ("novedad") recorded by market
// surveillance staff during a shift. Fecha holds the calendar day and Hora
// the time-of-day as "HH:MM:SS"; the pair is combined when checking the
// author's 9-hour edit window.
type Bitacora struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha     time.Time  `gorm:"type:date;not null;index"`
	Hora      string     `gorm:"type:varchar(8);not null"`
	UsuarioID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ColegaID  *uuid.UUID `gorm:"type:uuid"`
	NaveID    uuid.UUID  `gorm:"type:uuid;not null"`
	Camara    string     `gorm:"not null"`
	// Turno: 1 | 2 | 3
	Turno      int    `gorm:"not null"`
	Novedad    string `gorm:"type:text;not null"`
	Resultado  string `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	Referencia string `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Usuario Usuario  `gorm:"foreignKey:UsuarioID"`
	Colega  *Usuario `gorm:"foreignKey:ColegaID"`
	Nave    Nave     `gorm:"foreignKey:NaveID"`
}

func (Bitacora) TableName() string { return "bitacoras" }

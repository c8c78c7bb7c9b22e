package model

import (
	"time"

	"github.com/google/uuid"
)

// Presentacion is a unit-of-sale descriptor (quintal, caja, saco, ...).
// Same lifecycle shape as Producto.
type Presentacion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Presentacion) TableName() string { return "presentaciones" }

package model

import (
	"time"

	"github.com/google/uuid"
)

// Producto is a commodity traded in the market (papa, tomate, ...).
// Desactivation is the supported retirement path: rows referenced by
// precios_diarios cannot be hard-deleted.
type Producto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"index;not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Producto) TableName() string { return "productos" }

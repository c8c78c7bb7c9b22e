package model

import (
	"time"

	"github.com/google/uuid"
)

// Nave is a market hall. Bitacora entries reference the hall where the
// novelty was observed.
type Nave struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Sector    int       `gorm:"not null"`
	Productos string    `gorm:"not null"`
	CreatedAt time.Time
}

func (Nave) TableName() string { return "naves" }

// Camara is a surveillance camera installed in a hall. The catalog feeds
// the bitácora form; the entry itself stores the camera name as text.
type Camara struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	NaveID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time

	Nave Nave `gorm:"foreignKey:NaveID"`
}

func (Camara) TableName() string { return "camaras" }

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PrecioDiario is one daily price submission for a product/presentation.
// There is no uniqueness on (producto, fecha): multiple rows for the same
// product and day are independent history entries, ordered by fecha and
// insertion for the "latest price" computation.
type PrecioDiario struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PresentacionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha          time.Time       `gorm:"type:date;not null;index"`
	Peso           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Precio         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Producto     Producto     `gorm:"foreignKey:ProductoID"`
	Presentacion Presentacion `gorm:"foreignKey:PresentacionID"`
}

func (PrecioDiario) TableName() string { return "precios_diarios" }

package model

import (
	"time"

	"github.com/google/uuid"
)

// RolAdministrador is the distinguished role id with unrestricted
// edit/delete rights. Authorization compares the numeric id directly,
// never the role name.
const RolAdministrador uint = 1

// Rol is the lookup table for user roles. Ids are small sequential ints
// because role 1 is special-cased throughout the system.
type Rol struct {
	ID        uint   `gorm:"primaryKey"`
	NombreRol string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Rol) TableName() string { return "roles" }

// Usuario stores system users. Passwords are bcrypt hashes, plaintext is
// never persisted.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombres      string    `gorm:"not null"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	RolID        uint      `gorm:"not null;index"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Rol Rol `gorm:"foreignKey:RolID"`
}

func (Usuario) TableName() string { return "usuarios" }

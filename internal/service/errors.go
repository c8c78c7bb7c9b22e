package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// statuses; anything else surfaces as a generic 500.
var (
	ErrCredencialesInvalidas = errors.New("credenciales invalidas")
	ErrNoEncontrado          = errors.New("registro no encontrado")
	ErrUsuarioDuplicado      = errors.New("el usuario ya existe")
	ErrNoAutorizado          = errors.New("permisos insuficientes")
	// ErrReferenciado restricts deletion of a producto/presentacion while
	// daily price rows still reference it.
	ErrReferenciado = errors.New("existen precios registrados que lo referencian")
)

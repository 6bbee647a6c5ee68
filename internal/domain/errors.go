package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnsupportedMedia = errors.New("tipo de archivo no soportado")
	ErrIO               = errors.New("error de acceso al medio de almacenamiento")
)

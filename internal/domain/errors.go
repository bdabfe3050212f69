package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation        = errors.New("datos inválidos")
	ErrInvalidArgument   = errors.New("argumento inválido")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDivisionUndefined = errors.New("división indefinida: precio por litro ausente o cero")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)

package domain

import (
	"errors"
	"fmt"
)

// Tipos de error de dominio (sin dependencias externas).
// Las capas inferiores los envuelven con %w; la capa HTTP los traduce a status.
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidFormat = errors.New("formato inválido")
	ErrInvalidEnum   = errors.New("valor no permitido")
	ErrConflict      = errors.New("conflicto con el estado actual")
)

// FieldError describe el fallo de validación de un campo concreto.
// Unwrap devuelve el tipo (ErrInvalidFormat o ErrInvalidEnum) para usar errors.Is.
type FieldError struct {
	Field    string
	Expected string
	Kind     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s, se espera %s", e.Field, e.Kind, e.Expected)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// NotFoundf envuelve ErrNotFound con el recurso faltante.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflictf envuelve ErrConflict con el detalle del almacenamiento.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrLimitExceeded = errors.New("límite de ítems alcanzado")
	ErrRowNotFound   = errors.New("fila no encontrada")
	ErrNoItems       = errors.New("el documento no tiene ítems con importe")
	ErrUnknownKind   = errors.New("tipo de documento desconocido")
	ErrStorage       = errors.New("no se pudo guardar en el almacenamiento local")
)

// LimitError indica que el Store alcanzó su techo de filas.
// Distingue el techo de una sesión gratuita del de una premium.
type LimitError struct {
	Limit   int
	Premium bool
}

func (e *LimitError) Error() string {
	if e.Premium {
		return fmt.Sprintf("límite premium de %d ítems por documento alcanzado", e.Limit)
	}
	return fmt.Sprintf("la versión gratuita permite %d ítems por documento; actualice a premium para ampliar el límite", e.Limit)
}

// Unwrap permite errors.Is(err, ErrLimitExceeded).
func (e *LimitError) Unwrap() error { return ErrLimitExceeded }

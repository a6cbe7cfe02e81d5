package invoice

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoicegen/internal/domain"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
)

// Store lista ordenada de filas de un documento en edición de un tipo dado.
// Cada tipo tiene su propio Store; no es seguro para uso concurrente (lo
// posee un único contexto de UI).
type Store struct {
	spec    entity.KindSpec
	session entity.Session
	rows    []entity.LineItem
	newID   func() string
}

// NewStore crea un Store vacío para el tipo y la sesión dados.
func NewStore(spec entity.KindSpec, session entity.Session) *Store {
	return &Store{
		spec:    spec,
		session: session,
		newID:   uuid.NewString,
	}
}

// Kind tipo de documento del Store.
func (s *Store) Kind() entity.DocumentKind { return s.spec.Kind }

// Spec configuración del tipo.
func (s *Store) Spec() entity.KindSpec { return s.spec }

// Len cantidad de filas.
func (s *Store) Len() int { return len(s.rows) }

// Limit techo de filas de la sesión.
func (s *Store) Limit() int { return s.session.ItemLimit() }

// AddRow agrega una fila vacía (importe cero) y devuelve su ID.
// Falla con *domain.LimitError cuando se alcanzó el techo de la sesión.
func (s *Store) AddRow() (string, error) {
	limit := s.session.ItemLimit()
	if len(s.rows) >= limit {
		return "", &domain.LimitError{Limit: limit, Premium: s.session.Premium}
	}
	row := entity.LineItem{
		ID:          s.newID(),
		Quantity:    defaultQty,
		UnitMeasure: defaultMeasure,
		Rate:        decimal.Zero,
	}
	row.Amount = LineAmount(row, s.spec)
	s.rows = append(s.rows, row)
	return row.ID, nil
}

// RemoveRow elimina la fila. domain.ErrRowNotFound si el ID no existe.
func (s *Store) RemoveRow(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrRowNotFound, id)
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return nil
}

// UpdateRow fusiona los campos modificados y recalcula el importe.
func (s *Store) UpdateRow(id string, upd entity.RowUpdate) (entity.LineItem, error) {
	i := s.index(id)
	if i < 0 {
		return entity.LineItem{}, fmt.Errorf("%w: %s", domain.ErrRowNotFound, id)
	}
	row := &s.rows[i]
	if upd.Label != nil {
		row.Label = *upd.Label
	}
	if upd.Quantity != nil {
		row.Quantity = ParseQuantity(upd.Quantity)
	}
	if upd.UnitMeasure != nil {
		row.UnitMeasure = ParseUnitMeasure(upd.UnitMeasure)
	}
	if upd.Rate != nil {
		row.Rate = ParseRate(upd.Rate)
	}
	if len(upd.Attributes) > 0 {
		if row.Attributes == nil {
			row.Attributes = make(map[string]string, len(upd.Attributes))
		}
		for k, v := range upd.Attributes {
			row.Attributes[k] = v
		}
	}
	row.Amount = LineAmount(*row, s.spec)
	return row.Clone(), nil
}

// Row devuelve una copia de la fila.
func (s *Store) Row(id string) (entity.LineItem, error) {
	i := s.index(id)
	if i < 0 {
		return entity.LineItem{}, fmt.Errorf("%w: %s", domain.ErrRowNotFound, id)
	}
	return s.rows[i].Clone(), nil
}

// Rows copia de las filas en orden.
func (s *Store) Rows() []entity.LineItem {
	out := make([]entity.LineItem, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.Clone()
	}
	return out
}

// Totals recalcula los totales de todas las filas. Es idempotente.
func (s *Store) Totals() entity.Totals {
	return ComputeTotals(s.rows, s.spec)
}

// Reset vacía el Store para empezar un documento nuevo.
func (s *Store) Reset() {
	s.rows = nil
}

// SetSession cambia la sesión dueña conservando las filas. El nuevo techo rige
// para los AddRow siguientes; si ya hay más filas que el techo no se recorta
// ninguna.
func (s *Store) SetSession(session entity.Session) {
	s.session = session
}

func (s *Store) index(id string) int {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return i
		}
	}
	return -1
}

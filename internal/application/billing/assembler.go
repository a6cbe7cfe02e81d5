package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/invoicegen/internal/domain"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/domain/invoice"
)

// Assembler arma documentos inmutables a partir del estado de un Store.
type Assembler struct {
	ids     IDGenerator
	numbers invoice.Numberer
	now     func() time.Time
}

// NewAssembler construye el ensamblador. now puede ser nil (usa time.Now).
func NewAssembler(ids IDGenerator, numbers invoice.Numberer, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{ids: ids, numbers: numbers, now: now}
}

// Collect arma un Document con las filas de importe > 0. Si no queda ninguna
// devuelve domain.ErrNoItems: un documento vacío no se guarda, previsualiza ni
// imprime.
func (a *Assembler) Collect(kind entity.DocumentKind, header entity.DocumentHeader, rows []entity.LineItem, session entity.Session) (*entity.Document, error) {
	spec, ok := kind.Spec()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}

	items := make([]entity.LineItem, 0, len(rows))
	for _, r := range rows {
		item := r.Clone()
		item.Amount = invoice.LineAmount(item, spec)
		if !item.Amount.IsPositive() {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, domain.ErrNoItems
	}

	now := a.now()
	return &entity.Document{
		ID:           a.ids.NextID(),
		Number:       a.numbers.Next(spec.NumberPrefix, now),
		Kind:         kind,
		CreatedAt:    now,
		CustomerName: strings.TrimSpace(header.CustomerName),
		Fields:       relevantFields(spec, header.Fields),
		Items:        items,
		Totals:       invoice.ComputeTotals(items, spec),
		Author:       session,
	}, nil
}

// relevantFields copia solo los campos extra que el tipo recolecta.
func relevantFields(spec entity.KindSpec, in map[string]string) map[string]string {
	if len(spec.ExtraFields) == 0 || len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(spec.ExtraFields))
	for _, f := range spec.ExtraFields {
		if v := strings.TrimSpace(in[f.Key]); v != "" {
			out[f.Key] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Package invoice contiene el núcleo de cálculo: importe por fila, totales con
// el esquema de recargos del tipo de documento, el Store de filas y la
// numeración de documentos. No hace I/O.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/pkg/currency"
)

var (
	hundred        = decimal.NewFromInt(100)
	defaultQty     = decimal.NewFromInt(1)
	defaultMeasure = decimal.NewFromInt(1)
)

// RowInput valores de una fila tal como los entrega la presentación
// (texto, número JSON o nil).
type RowInput struct {
	Quantity    any
	UnitMeasure any
	Rate        any
}

// ParseQuantity cantidad indulgente: ausente o ilegible vale 1.
func ParseQuantity(v any) decimal.Decimal {
	if d, ok := currency.ParseAny(v); ok {
		return d
	}
	return defaultQty
}

// ParseUnitMeasure unidad de medida indulgente: ausente o ilegible vale 1.
func ParseUnitMeasure(v any) decimal.Decimal {
	if d, ok := currency.ParseAny(v); ok {
		return d
	}
	return defaultMeasure
}

// ParseRate tarifa indulgente: ausente o ilegible vale 0.
func ParseRate(v any) decimal.Decimal {
	d, _ := currency.ParseAny(v)
	return d
}

// RowAmount importe de una fila cruda: rate × unitMeasure si el tipo se
// valoriza por unidad, rate × quantity en otro caso. Los negativos no se
// rechazan; producen importes negativos.
func RowAmount(in RowInput, spec entity.KindSpec) decimal.Decimal {
	return LineAmount(entity.LineItem{
		Quantity:    ParseQuantity(in.Quantity),
		UnitMeasure: ParseUnitMeasure(in.UnitMeasure),
		Rate:        ParseRate(in.Rate),
	}, spec)
}

// LineAmount importe de una fila ya normalizada.
func LineAmount(li entity.LineItem, spec entity.KindSpec) decimal.Decimal {
	if spec.UnitBased() {
		return li.UnitMeasure.Mul(li.Rate)
	}
	return li.Quantity.Mul(li.Rate)
}

// ComputeTotals suma todas las filas (incluidas las de importe cero o
// negativo) y aplica cada recargo del esquema sobre el subtotal, sin componer.
// La aritmética es decimal exacta; el redondeo a dos decimales ocurre solo al
// formatear.
func ComputeTotals(rows []entity.LineItem, spec entity.KindSpec) entity.Totals {
	subtotal := decimal.Zero
	for _, r := range rows {
		subtotal = subtotal.Add(LineAmount(r, spec))
	}
	charges := make([]entity.ChargeAmount, 0, len(spec.Charges))
	grand := subtotal
	for _, c := range spec.Charges {
		amount := subtotal.Mul(c.Percent).Div(hundred)
		charges = append(charges, entity.ChargeAmount{
			Name:    c.Name,
			Percent: c.Percent,
			Amount:  amount,
		})
		grand = grand.Add(amount)
	}
	return entity.Totals{
		Subtotal:   subtotal,
		Charges:    charges,
		GrandTotal: grand,
	}
}

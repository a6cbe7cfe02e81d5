package entity

import "github.com/shopspring/decimal"

// LineItem una fila con precio dentro de un documento.
// Amount es derivado: siempre lo recalcula invoice.RowAmount a partir de
// Rate y Quantity/UnitMeasure según el tipo de documento.
type LineItem struct {
	ID          string            `json:"id"`
	Label       string            `json:"label"`
	Quantity    decimal.Decimal   `json:"quantity"`
	UnitMeasure decimal.Decimal   `json:"unit_measure"`
	Rate        decimal.Decimal   `json:"rate"`
	Amount      decimal.Decimal   `json:"amount"`
	Attributes  map[string]string `json:"attributes,omitempty"` // hsn_sac, area_unit, ...
}

// Clone copia la fila incluyendo el mapa de atributos.
func (li LineItem) Clone() LineItem {
	out := li
	if li.Attributes != nil {
		out.Attributes = make(map[string]string, len(li.Attributes))
		for k, v := range li.Attributes {
			out.Attributes[k] = v
		}
	}
	return out
}

// RowUpdate cambios a fusionar en una fila. Un campo nil no se modifica.
// Quantity, UnitMeasure y Rate llegan tal cual los ingresó el usuario
// (texto o número) y se interpretan con la política indulgente del códec.
type RowUpdate struct {
	Label       *string
	Quantity    any
	UnitMeasure any
	Rate        any
	Attributes  map[string]string
}

package entity

import "github.com/shopspring/decimal"

// ChargeAmount importe de un recargo aplicado al subtotal.
type ChargeAmount struct {
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

// Totals registro derivado: subtotal, un importe por recargo y total general.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Charges    []ChargeAmount  `json:"charges"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Charge busca un recargo por nombre.
func (t Totals) Charge(name string) (ChargeAmount, bool) {
	for _, c := range t.Charges {
		if c.Name == name {
			return c, true
		}
	}
	return ChargeAmount{}, false
}

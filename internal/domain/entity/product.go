package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product entrada del directorio de productos/tarifas de una cuenta.
// Se usa para precargar filas; el calculador no la necesita.
type Product struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	TaxCode   string          `json:"tax_code,omitempty"` // HSN/SAC
	Unit      string          `json:"unit,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

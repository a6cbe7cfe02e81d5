package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateRowRequest body para PATCH /api/workspace/:kind/rows/:id.
// quantity, unit_measure y rate aceptan número o texto ("₹1,200.50").
type UpdateRowRequest struct {
	Label       *string           `json:"label,omitempty"`
	Quantity    any               `json:"quantity,omitempty"`
	UnitMeasure any               `json:"unit_measure,omitempty"`
	Rate        any               `json:"rate,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// DocumentHeaderRequest body para preview / print / save.
type DocumentHeaderRequest struct {
	CustomerName string            `json:"customer_name"`
	Fields       map[string]string `json:"fields,omitempty"`
}

// LineItemResponse fila con importe numérico y formateado.
type LineItemResponse struct {
	ID              string            `json:"id"`
	Label           string            `json:"label"`
	Quantity        decimal.Decimal   `json:"quantity"`
	UnitMeasure     decimal.Decimal   `json:"unit_measure"`
	Rate            decimal.Decimal   `json:"rate"`
	Amount          decimal.Decimal   `json:"amount"`
	AmountFormatted string            `json:"amount_formatted"`
	Attributes      map[string]string `json:"attributes,omitempty"`
}

// ChargeResponse recargo aplicado.
type ChargeResponse struct {
	Name            string          `json:"name"`
	Percent         decimal.Decimal `json:"percent"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
}

// TotalsResponse totales numéricos y formateados.
type TotalsResponse struct {
	Subtotal            decimal.Decimal  `json:"subtotal"`
	SubtotalFormatted   string           `json:"subtotal_formatted"`
	Charges             []ChargeResponse `json:"charges"`
	GrandTotal          decimal.Decimal  `json:"grand_total"`
	GrandTotalFormatted string           `json:"grand_total_formatted"`
}

// WorkspaceResponse estado del documento en edición de un tipo.
type WorkspaceResponse struct {
	Kind   string             `json:"kind"`
	Limit  int                `json:"limit"`
	Rows   []LineItemResponse `json:"rows"`
	Totals TotalsResponse     `json:"totals"`
}

// DocumentResponse documento ensamblado.
type DocumentResponse struct {
	ID           string             `json:"id"`
	Number       string             `json:"number"`
	Kind         string             `json:"kind"`
	CreatedAt    time.Time          `json:"created_at"`
	CustomerName string             `json:"customer_name"`
	Fields       map[string]string  `json:"fields,omitempty"`
	Items        []LineItemResponse `json:"items"`
	Totals       TotalsResponse     `json:"totals"`
	AuthorName   string             `json:"author_name"`
	AuthorID     string             `json:"author_id"`
	Premium      bool               `json:"premium"`
}

// DocumentListResponse página de documentos guardados.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// SaveDocumentResponse resultado de guardar: si el almacenamiento falla el
// documento igual se devuelve y Warning explica el problema.
type SaveDocumentResponse struct {
	Document DocumentResponse `json:"document"`
	Saved    bool             `json:"saved"`
	Warning  string           `json:"warning,omitempty"`
}

// KindResponse configuración pública de un tipo de documento.
type KindResponse struct {
	Kind        string           `json:"kind"`
	Label       string           `json:"label"`
	Title       string           `json:"title"`
	UnitBased   bool             `json:"unit_based"`
	Columns     []ColumnResponse `json:"columns"`
	Charges     []ChargeSpec     `json:"charges"`
	ExtraFields []FieldSpec      `json:"extra_fields"`
}

// ColumnResponse columna de la tabla de ítems.
type ColumnResponse struct {
	Header string `json:"header"`
	Key    string `json:"key"`
}

// ChargeSpec recargo configurado.
type ChargeSpec struct {
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
}

// FieldSpec campo extra de cabecera.
type FieldSpec struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name              string `json:"name"`
	TaxRegistrationNo string `json:"tax_registration_no,omitempty"`
	Address           string `json:"address,omitempty"`
	Phone             string `json:"phone,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	TaxRegistrationNo string `json:"tax_registration_no,omitempty"`
	Address           string `json:"address,omitempty"`
	Phone             string `json:"phone,omitempty"`
}

// CreateProductRequest body para POST /api/products. rate acepta número o texto.
type CreateProductRequest struct {
	Name    string `json:"name"`
	Rate    any    `json:"rate"`
	TaxCode string `json:"tax_code,omitempty"`
	Unit    string `json:"unit,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Rate          decimal.Decimal `json:"rate"`
	RateFormatted string          `json:"rate_formatted"`
	TaxCode       string          `json:"tax_code,omitempty"`
	Unit          string          `json:"unit,omitempty"`
}

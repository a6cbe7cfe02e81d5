package entity

import "github.com/shopspring/decimal"

// DocumentKind identifica la variante de documento. Toda la configuración de
// cada variante vive en su KindSpec: agregar un tipo es agregar datos.
type DocumentKind string

const (
	KindPointOfSale  DocumentKind = "pos"
	KindProfessional DocumentKind = "professional"
	KindRealEstate   DocumentKind = "real_estate"
)

// PricingMode indica qué magnitud multiplica la tarifa de cada fila.
type PricingMode int

const (
	PricingByQuantity PricingMode = iota // amount = rate × quantity
	PricingByUnit                        // amount = rate × unitMeasure (área)
)

// Charge es un recargo porcentual sobre el subtotal (no compuesto).
type Charge struct {
	Name    string
	Percent decimal.Decimal // 18 = 18%
}

// ColumnKey es el dato de la fila que muestra una columna.
type ColumnKey string

const (
	ColumnLabel       ColumnKey = "label"
	ColumnTaxCode     ColumnKey = "tax_code"
	ColumnQuantity    ColumnKey = "quantity"
	ColumnUnitMeasure ColumnKey = "unit_measure"
	ColumnRate        ColumnKey = "rate"
	ColumnAmount      ColumnKey = "amount"
)

// Column encabezado + dato de una columna de la tabla de ítems.
type Column struct {
	Header string    `json:"header"`
	Key    ColumnKey `json:"key"`
}

// Claves de campos de cabecera específicos de cada tipo.
const (
	FieldTaxRegistration = "tax_registration_no"
	FieldBillingAddress  = "billing_address"
	FieldPropertyType    = "property_type"
	FieldPropertyAddress = "property_address"
)

// Claves de atributos auxiliares de fila (no los interpreta el calculador).
const (
	AttrTaxCode  = "hsn_sac"
	AttrAreaUnit = "area_unit"
)

// HeaderField campo extra de cabecera con su etiqueta de presentación.
type HeaderField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// KindSpec configuración completa de un tipo de documento.
type KindSpec struct {
	Kind         DocumentKind
	Label        string // "Point of Sale", "Professional", ...
	Title        string // "INVOICE" o "COST SHEET"
	NumberPrefix string
	Pricing      PricingMode
	Charges      []Charge
	Columns      []Column
	ExtraFields  []HeaderField
}

var kindSpecs = map[DocumentKind]KindSpec{
	KindPointOfSale: {
		Kind:         KindPointOfSale,
		Label:        "Point of Sale",
		Title:        "INVOICE",
		NumberPrefix: "POS",
		Pricing:      PricingByQuantity,
		Charges: []Charge{
			{Name: "Tax", Percent: decimal.NewFromInt(18)},
		},
		Columns: []Column{
			{Header: "Product", Key: ColumnLabel},
			{Header: "Qty", Key: ColumnQuantity},
			{Header: "Rate", Key: ColumnRate},
			{Header: "Amount", Key: ColumnAmount},
		},
	},
	KindProfessional: {
		Kind:         KindProfessional,
		Label:        "Professional",
		Title:        "INVOICE",
		NumberPrefix: "GST",
		Pricing:      PricingByQuantity,
		Charges: []Charge{
			{Name: "CGST", Percent: decimal.NewFromInt(9)},
			{Name: "SGST", Percent: decimal.NewFromInt(9)},
		},
		Columns: []Column{
			{Header: "Description", Key: ColumnLabel},
			{Header: "HSN/SAC", Key: ColumnTaxCode},
			{Header: "Qty", Key: ColumnQuantity},
			{Header: "Rate", Key: ColumnRate},
			{Header: "Amount", Key: ColumnAmount},
		},
		ExtraFields: []HeaderField{
			{Key: FieldTaxRegistration, Label: "GSTIN"},
			{Key: FieldBillingAddress, Label: "Billing Address"},
		},
	},
	KindRealEstate: {
		Kind:         KindRealEstate,
		Label:        "Real Estate",
		Title:        "COST SHEET",
		NumberPrefix: "RE",
		Pricing:      PricingByUnit,
		Charges: []Charge{
			{Name: "Registration", Percent: decimal.NewFromInt(2)},
			{Name: "Stamp Duty", Percent: decimal.NewFromInt(5)},
		},
		Columns: []Column{
			{Header: "Description", Key: ColumnLabel},
			{Header: "Area/Unit", Key: ColumnUnitMeasure},
			{Header: "Rate", Key: ColumnRate},
			{Header: "Amount", Key: ColumnAmount},
		},
		ExtraFields: []HeaderField{
			{Key: FieldPropertyType, Label: "Property Type"},
			{Key: FieldPropertyAddress, Label: "Property Address"},
		},
	},
}

// Spec devuelve la configuración del tipo; ok es false si el tipo no existe.
func (k DocumentKind) Spec() (KindSpec, bool) {
	s, ok := kindSpecs[k]
	return s, ok
}

// Valid indica si el tipo está registrado.
func (k DocumentKind) Valid() bool {
	_, ok := kindSpecs[k]
	return ok
}

// UnitBased indica si las filas se valorizan por unidad de medida (área).
func (s KindSpec) UnitBased() bool { return s.Pricing == PricingByUnit }

// Kinds lista los tipos en orden estable de presentación.
func Kinds() []DocumentKind {
	return []DocumentKind{KindPointOfSale, KindProfessional, KindRealEstate}
}

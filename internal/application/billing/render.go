package billing

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/invoicegen/internal/domain"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/pkg/currency"
)

// DefaultSupportContact contacto de soporte impreso en el pie.
const DefaultSupportContact = "support@invoicegen.app"

// HTMLRenderer produce la representación imprimible (HTML autocontenido) de
// un documento. Render es puro: la única parte variable es generatedAt.
type HTMLRenderer struct {
	supportContact string
	upper          cases.Caser
}

// NewHTMLRenderer construye el renderer; supportContact vacío usa el de fábrica.
func NewHTMLRenderer(supportContact string) *HTMLRenderer {
	if supportContact == "" {
		supportContact = DefaultSupportContact
	}
	return &HTMLRenderer{
		supportContact: supportContact,
		upper:          cases.Upper(language.English),
	}
}

type infoLine struct {
	Label string
	Value string
}

type totalLine struct {
	Label string
	Value string
}

type documentView struct {
	KindLabel      string
	Title          string
	Info           []infoLine
	Headers        []string
	Rows           [][]string
	Totals         []totalLine
	GrandTotal     string
	Author         string
	Plan           string
	SupportContact string
}

// Render genera el HTML del documento.
func (r *HTMLRenderer) Render(doc *entity.Document, generatedAt time.Time) (string, error) {
	if doc == nil {
		return "", domain.ErrInvalidInput
	}
	spec, ok := doc.Kind.Spec()
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownKind, doc.Kind)
	}

	view := documentView{
		KindLabel:      r.upper.String(spec.Label),
		Title:          spec.Title,
		Info:           infoLines(doc, spec, generatedAt),
		Headers:        make([]string, 0, len(spec.Columns)),
		Rows:           make([][]string, 0, len(doc.Items)),
		Totals:         totalLines(doc.Totals),
		GrandTotal:     currency.Format(doc.Totals.GrandTotal),
		Author:         fmt.Sprintf("%s (%s)", doc.Author.DisplayName, doc.Author.AccountID),
		Plan:           planLabel(doc.Author),
		SupportContact: r.supportContact,
	}
	for _, c := range spec.Columns {
		view.Headers = append(view.Headers, c.Header)
	}
	for _, item := range doc.Items {
		cells := make([]string, 0, len(spec.Columns))
		for _, c := range spec.Columns {
			cells = append(cells, CellValue(item, c.Key))
		}
		view.Rows = append(view.Rows, cells)
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return buf.String(), nil
}

// CellValue texto de una celda de la tabla de ítems.
func CellValue(item entity.LineItem, key entity.ColumnKey) string {
	switch key {
	case entity.ColumnLabel:
		return item.Label
	case entity.ColumnTaxCode:
		return item.Attributes[entity.AttrTaxCode]
	case entity.ColumnQuantity:
		return item.Quantity.String()
	case entity.ColumnUnitMeasure:
		if unit := item.Attributes[entity.AttrAreaUnit]; unit != "" {
			return item.UnitMeasure.String() + " " + unit
		}
		return item.UnitMeasure.String()
	case entity.ColumnRate:
		return currency.Format(item.Rate)
	case entity.ColumnAmount:
		return currency.Format(item.Amount)
	}
	return ""
}

// ChargeLabel "CGST (9%)".
func ChargeLabel(c entity.ChargeAmount) string {
	return fmt.Sprintf("%s (%s%%)", c.Name, c.Percent.String())
}

func infoLines(doc *entity.Document, spec entity.KindSpec, generatedAt time.Time) []infoLine {
	lines := []infoLine{
		{Label: "Document No.", Value: doc.Number},
		{Label: "Date", Value: doc.CreatedAt.Format("02 Jan 2006")},
		{Label: "Generated", Value: generatedAt.Format("02 Jan 2006 15:04:05")},
		{Label: "Customer", Value: nonEmpty(doc.CustomerName, "-")},
	}
	for _, f := range spec.ExtraFields {
		lines = append(lines, infoLine{Label: f.Label, Value: nonEmpty(doc.Fields[f.Key], "-")})
	}
	return lines
}

func totalLines(t entity.Totals) []totalLine {
	lines := []totalLine{{Label: "Subtotal", Value: currency.Format(t.Subtotal)}}
	for _, c := range t.Charges {
		lines = append(lines, totalLine{Label: ChargeLabel(c), Value: currency.Format(c.Amount)})
	}
	return lines
}

func planLabel(s entity.Session) string {
	if s.Premium {
		return "Premium"
	}
	return "Free"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:Helvetica,Arial,sans-serif;font-size:12px;color:#222;margin:24px}
.header{display:flex;justify-content:space-between;border-bottom:2px solid #00467f;padding-bottom:8px}
.kind{color:#00467f;font-weight:bold}
.title{font-size:20px;font-weight:bold}
table{width:100%;border-collapse:collapse;margin-top:12px}
th{background:#00467f;color:#fff;text-align:left;padding:4px}
td{border-bottom:1px solid #ddd;padding:4px}
.totals{margin-top:12px;margin-left:auto;width:40%}
.totals td{border:none;text-align:right}
.grand td{font-weight:bold;color:#00467f;border-top:1px solid #00467f}
.footer{margin-top:24px;color:#666;font-size:10px}
</style>
</head>
<body>
<div class="header">
<div class="kind">{{.KindLabel}}</div>
<div class="title">{{.Title}}</div>
</div>
<table class="info">
{{range .Info}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
<table class="items">
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
<table class="totals">
{{range .Totals}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}<tr class="grand"><td>Grand Total</td><td>{{.GrandTotal}}</td></tr>
</table>
<div class="footer">Generated by {{.Author}} · {{.Plan}} plan · Support: {{.SupportContact}}</div>
</body>
</html>
`))

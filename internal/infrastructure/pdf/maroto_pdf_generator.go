// Package pdf genera la versión imprimible de un documento (factura o cost
// sheet) con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de documento    │  Título + N° + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INFO: Cliente + campos extra del tipo                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: columnas según el tipo                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / recargos / Grand Total                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR + sesión + contacto de soporte                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	appbilling "github.com/jhoicas/invoicegen/internal/application/billing"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/pkg/currency"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	supportContact string
	now            func() time.Time
	upper          cases.Caser
}

var _ appbilling.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(supportContact string) *MarotoPDFGenerator {
	if supportContact == "" {
		supportContact = appbilling.DefaultSupportContact
	}
	return &MarotoPDFGenerator{
		supportContact: supportContact,
		now:            time.Now,
		upper:          cases.Upper(language.English),
	}
}

// GenerateDocumentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(_ context.Context, doc *entity.Document) ([]byte, error) {
	spec, ok := doc.Kind.Spec()
	if !ok {
		return nil, fmt.Errorf("pdf: tipo de documento desconocido %q", doc.Kind)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(spec.Title+" "+doc.Number, true).
		WithAuthor(doc.Author.DisplayName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, spec, g.upper.String(spec.Label)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(infoRows(doc, spec, g.now())...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(spec))
	m.AddRows(tableDetailRows(doc.Items, spec)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(doc.Totals)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc, g.supportContact))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tipo de documento (izq) y título + número + fecha (der).
func headerRow(doc *entity.Document, spec entity.KindSpec, kindLabel string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(kindLabel, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(spec.Title, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+doc.CreatedAt.Format("02 Jan 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// infoRows: cliente, fecha de generación y campos extra del tipo.
func infoRows(doc *entity.Document, spec entity.KindSpec, generatedAt time.Time) []core.Row {
	info := func(label, value string) core.Row {
		return row.New(5).Add(
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary})),
			col.New(9).Add(text.New(value, props.Text{Size: 8})),
		)
	}
	rows := []core.Row{
		info("Customer", nonEmpty(doc.CustomerName, "-")),
		info("Generated", generatedAt.Format("02 Jan 2006 15:04:05")),
	}
	for _, f := range spec.ExtraFields {
		rows = append(rows, info(f.Label, nonEmpty(doc.Fields[f.Key], "-")))
	}
	return rows
}

// columnSizes reparte la grilla de 12: 2 por columna y el resto a la descripción.
func columnSizes(spec entity.KindSpec) []int {
	sizes := make([]int, len(spec.Columns))
	rest := 12
	for i, c := range spec.Columns {
		if c.Key == entity.ColumnLabel {
			continue
		}
		sizes[i] = 2
		rest -= 2
	}
	for i, c := range spec.Columns {
		if c.Key == entity.ColumnLabel {
			sizes[i] = rest
		}
	}
	return sizes
}

func columnAlign(key entity.ColumnKey) align.Type {
	switch key {
	case entity.ColumnRate, entity.ColumnAmount:
		return align.Right
	case entity.ColumnLabel:
		return align.Left
	default:
		return align.Center
	}
}

// tableHeaderRow: cabecera de la tabla con los encabezados del tipo.
func tableHeaderRow(spec entity.KindSpec) core.Row {
	sizes := columnSizes(spec)
	cols := make([]core.Col, 0, len(spec.Columns))
	for i, c := range spec.Columns {
		cols = append(cols, col.New(sizes[i]).Add(text.New(c.Header, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: columnAlign(c.Key),
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por ítem.
func tableDetailRows(items []entity.LineItem, spec entity.KindSpec) []core.Row {
	sizes := columnSizes(spec)
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		cols := make([]core.Col, 0, len(spec.Columns))
		for i, c := range spec.Columns {
			cols = append(cols, col.New(sizes[i]).Add(text.New(
				pdfMoney(appbilling.CellValue(it, c.Key)),
				props.Text{Size: 8, Align: columnAlign(c.Key), Top: 1, Left: 1, Right: 1},
			)))
		}
		result = append(result, row.New(7).Add(cols...))
	}
	return result
}

// totalsRows: subtotal, un renglón por recargo y el total.
func totalsRows(t entity.Totals) []core.Row {
	totalLine := func(label string, amount decimal.Decimal, grand bool) core.Row {
		p := props.Text{Size: 9, Align: align.Right, Right: 1}
		if grand {
			p = props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1}
		}
		lp := p
		lp.Style = fontstyle.Bold
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, lp)),
			col.New(3).Add(text.New(pdfMoney(currency.Format(amount)), p)),
		)
	}
	rows := []core.Row{totalLine("Subtotal", t.Subtotal, false)}
	for _, c := range t.Charges {
		rows = append(rows, totalLine(appbilling.ChargeLabel(c), c.Amount, false))
	}
	return append(rows, totalLine("Grand Total", t.GrandTotal, true))
}

// footerRow: QR con número y total + sesión que generó el documento.
func footerRow(doc *entity.Document, supportContact string) core.Row {
	plan := "Free"
	if doc.Author.Premium {
		plan = "Premium"
	}
	qr := fmt.Sprintf("%s|%s|%s", doc.Number, doc.Totals.GrandTotal.StringFixed(2), doc.CreatedAt.UTC().Format(time.RFC3339))
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New(fmt.Sprintf("Generated by %s (%s) · %s plan", doc.Author.DisplayName, doc.Author.AccountID, plan), props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New("Support: "+supportContact, props.Text{
				Size: 8, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// pdfMoney reemplaza el símbolo de la rupia: la fuente base del PDF no trae el glifo.
func pdfMoney(s string) string {
	return strings.Replace(s, currency.Symbol, "Rs. ", 1)
}

package billing

import (
	"github.com/jhoicas/invoicegen/internal/application/dto"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/pkg/currency"
)

// ToLineItemResponse fila con su importe ya formateado.
func ToLineItemResponse(li entity.LineItem) dto.LineItemResponse {
	return dto.LineItemResponse{
		ID:              li.ID,
		Label:           li.Label,
		Quantity:        li.Quantity,
		UnitMeasure:     li.UnitMeasure,
		Rate:            li.Rate,
		Amount:          li.Amount,
		AmountFormatted: currency.Format(li.Amount),
		Attributes:      li.Attributes,
	}
}

// ToTotalsResponse totales numéricos y formateados.
func ToTotalsResponse(t entity.Totals) dto.TotalsResponse {
	charges := make([]dto.ChargeResponse, 0, len(t.Charges))
	for _, c := range t.Charges {
		charges = append(charges, dto.ChargeResponse{
			Name:            c.Name,
			Percent:         c.Percent,
			Amount:          c.Amount,
			AmountFormatted: currency.Format(c.Amount),
		})
	}
	return dto.TotalsResponse{
		Subtotal:            t.Subtotal,
		SubtotalFormatted:   currency.Format(t.Subtotal),
		Charges:             charges,
		GrandTotal:          t.GrandTotal,
		GrandTotalFormatted: currency.Format(t.GrandTotal),
	}
}

// ToDocumentResponse documento en respuestas.
func ToDocumentResponse(doc *entity.Document) dto.DocumentResponse {
	items := make([]dto.LineItemResponse, 0, len(doc.Items))
	for _, li := range doc.Items {
		items = append(items, ToLineItemResponse(li))
	}
	return dto.DocumentResponse{
		ID:           doc.ID,
		Number:       doc.Number,
		Kind:         string(doc.Kind),
		CreatedAt:    doc.CreatedAt,
		CustomerName: doc.CustomerName,
		Fields:       doc.Fields,
		Items:        items,
		Totals:       ToTotalsResponse(doc.Totals),
		AuthorName:   doc.Author.DisplayName,
		AuthorID:     doc.Author.AccountID,
		Premium:      doc.Author.Premium,
	}
}

// ToKindResponse configuración pública del tipo.
func ToKindResponse(spec entity.KindSpec) dto.KindResponse {
	out := dto.KindResponse{
		Kind:        string(spec.Kind),
		Label:       spec.Label,
		Title:       spec.Title,
		UnitBased:   spec.UnitBased(),
		Columns:     make([]dto.ColumnResponse, 0, len(spec.Columns)),
		Charges:     make([]dto.ChargeSpec, 0, len(spec.Charges)),
		ExtraFields: make([]dto.FieldSpec, 0, len(spec.ExtraFields)),
	}
	for _, c := range spec.Columns {
		out.Columns = append(out.Columns, dto.ColumnResponse{Header: c.Header, Key: string(c.Key)})
	}
	for _, c := range spec.Charges {
		out.Charges = append(out.Charges, dto.ChargeSpec{Name: c.Name, Percent: c.Percent})
	}
	for _, f := range spec.ExtraFields {
		out.ExtraFields = append(out.ExtraFields, dto.FieldSpec{Key: f.Key, Label: f.Label})
	}
	return out
}

// KindCatalog todos los tipos en orden de presentación.
func KindCatalog() []dto.KindResponse {
	kinds := entity.Kinds()
	out := make([]dto.KindResponse, 0, len(kinds))
	for _, k := range kinds {
		spec, _ := k.Spec()
		out = append(out, ToKindResponse(spec))
	}
	return out
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:                c.ID,
		Name:              c.Name,
		TaxRegistrationNo: c.TaxRegistrationNo,
		Address:           c.Address,
		Phone:             c.Phone,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Rate:          p.Rate,
		RateFormatted: currency.Format(p.Rate),
		TaxCode:       p.TaxCode,
		Unit:          p.Unit,
	}
}

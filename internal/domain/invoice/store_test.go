package invoice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicegen/internal/domain"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/domain/invoice"
)

var (
	freeSession    = entity.Session{AccountID: "demo", DisplayName: "Demo"}
	premiumSession = entity.Session{AccountID: "pro", DisplayName: "Pro", Premium: true}
)

func strPtr(s string) *string { return &s }

func TestStore_TechoGratuito(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindPointOfSale), freeSession)
	for i := 0; i < entity.FreeItemLimit; i++ {
		_, err := s.AddRow()
		require.NoError(t, err, "la fila %d debe aceptarse", i+1)
	}

	_, err := s.AddRow()
	require.Error(t, err, "la 4.ª fila debe rechazarse")
	assert.True(t, errors.Is(err, domain.ErrLimitExceeded))

	var limitErr *domain.LimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, entity.FreeItemLimit, limitErr.Limit)
	assert.False(t, limitErr.Premium)
	assert.Equal(t, entity.FreeItemLimit, s.Len(), "no se trunca ni se agrega nada")
}

func TestStore_TechoPremium(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindProfessional), premiumSession)
	for i := 0; i < entity.PremiumItemLimit; i++ {
		_, err := s.AddRow()
		require.NoError(t, err)
	}
	_, err := s.AddRow()
	require.ErrorIs(t, err, domain.ErrLimitExceeded, "la fila 51 debe rechazarse")

	var limitErr *domain.LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.True(t, limitErr.Premium)
	assert.Contains(t, err.Error(), "premium")
}

func TestStore_FilaNuevaConImporteCero(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindPointOfSale), freeSession)
	id, err := s.AddRow()
	require.NoError(t, err)
	require.NotEmpty(t, id)

	row, err := s.Row(id)
	require.NoError(t, err)
	assert.True(t, row.Amount.IsZero())
	assert.Equal(t, "1", row.Quantity.String())
}

func TestStore_UpdateRowRecalculaImporte(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindPointOfSale), freeSession)
	id, _ := s.AddRow()

	row, err := s.UpdateRow(id, entity.RowUpdate{Label: strPtr("Pen"), Quantity: "10", Rate: "10.00"})
	require.NoError(t, err)
	assert.Equal(t, "Pen", row.Label)
	assert.Equal(t, "100.00", row.Amount.StringFixed(2))

	// Solo cambia la tarifa: la cantidad se conserva.
	row, err = s.UpdateRow(id, entity.RowUpdate{Rate: "12.5"})
	require.NoError(t, err)
	assert.Equal(t, "Pen", row.Label)
	assert.Equal(t, "125.00", row.Amount.StringFixed(2))

	// Cantidad ilegible vuelve a 1.
	row, err = s.UpdateRow(id, entity.RowUpdate{Quantity: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "12.50", row.Amount.StringFixed(2))
}

func TestStore_UpdateRowAtributos(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindProfessional), freeSession)
	id, _ := s.AddRow()
	_, err := s.UpdateRow(id, entity.RowUpdate{Attributes: map[string]string{entity.AttrTaxCode: "9983"}})
	require.NoError(t, err)

	row, _ := s.Row(id)
	assert.Equal(t, "9983", row.Attributes[entity.AttrTaxCode])

	// Las copias no comparten el mapa con el Store.
	row.Attributes[entity.AttrTaxCode] = "x"
	again, _ := s.Row(id)
	assert.Equal(t, "9983", again.Attributes[entity.AttrTaxCode])
}

func TestStore_UnidadEnRealEstate(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindRealEstate), freeSession)
	id, _ := s.AddRow()
	row, err := s.UpdateRow(id, entity.RowUpdate{UnitMeasure: 1200, Rate: "5000", Quantity: 99})
	require.NoError(t, err)
	assert.Equal(t, "6000000.00", row.Amount.StringFixed(2))
}

func TestStore_RemoveRow(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindPointOfSale), freeSession)
	a, _ := s.AddRow()
	b, _ := s.AddRow()
	require.NoError(t, s.RemoveRow(a))

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, b, rows[0].ID)

	// Tras eliminar se puede volver a agregar hasta el techo.
	_, err := s.AddRow()
	require.NoError(t, err)
	_, err = s.AddRow()
	require.NoError(t, err)
}

func TestStore_FilaDesconocida(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindPointOfSale), freeSession)
	assert.ErrorIs(t, s.RemoveRow("nope"), domain.ErrRowNotFound)

	_, err := s.UpdateRow("nope", entity.RowUpdate{Rate: "1"})
	assert.ErrorIs(t, err, domain.ErrRowNotFound)
}

func TestStore_TotalsIdempotente(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindPointOfSale), freeSession)
	pen, _ := s.AddRow()
	book, _ := s.AddRow()
	_, _ = s.UpdateRow(pen, entity.RowUpdate{Label: strPtr("Pen"), Quantity: 10, Rate: "10.00"})
	_, _ = s.UpdateRow(book, entity.RowUpdate{Label: strPtr("Book"), Quantity: 2, Rate: "250.00"})

	first := s.Totals()
	second := s.Totals()
	assert.Equal(t, "600.00", first.Subtotal.StringFixed(2))
	assert.Equal(t, "108.00", first.Charges[0].Amount.StringFixed(2))
	assert.Equal(t, "708.00", first.GrandTotal.StringFixed(2))
	assert.True(t, first.GrandTotal.Equal(second.GrandTotal))
}

func TestStore_Reset(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindPointOfSale), freeSession)
	_, _ = s.AddRow()
	s.Reset()
	assert.Equal(t, 0, s.Len())
}

func TestStore_SetSessionConservaFilas(t *testing.T) {
	s := invoice.NewStore(spec(t, entity.KindPointOfSale), premiumSession)
	for i := 0; i < 5; i++ {
		_, err := s.AddRow()
		require.NoError(t, err)
	}

	s.SetSession(freeSession)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, entity.FreeItemLimit, s.Limit())
	_, err := s.AddRow()
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
}

package currency_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoicegen/pkg/currency"
)

func TestParse_TextoLibre(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"150.50", "150.5"},
		{"₹1,23,456.78", "123456.78"},
		{"-₹1,234.00", "-1234"},
		{"  42 ", "42"},
		{"1.2.3", "1.2"},
		{"10.50.99.1", "10.5"},
		{".5", "0.5"},
		{"5.", "5"},
		{"Rs 2,500/-", "2500"},
		{"abc", "0"},
		{"", "0"},
		{"-", "0"},
		{".", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := currency.Parse(tc.in)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"Parse(%q) = %s, se esperaba %s", tc.in, got, tc.want)
		})
	}
}

func TestTryParse_IndicaEntradaMalformada(t *testing.T) {
	_, ok := currency.TryParse("abc")
	assert.False(t, ok, "texto sin dígitos no es un número")

	_, ok = currency.TryParse("")
	assert.False(t, ok)

	v, ok := currency.TryParse("0")
	assert.True(t, ok, "cero explícito sí es un número válido")
	assert.True(t, v.IsZero())
}

func TestParseAny_ValoresJSON(t *testing.T) {
	v, ok := currency.ParseAny(float64(3))
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(3)))

	v, ok = currency.ParseAny("150.50")
	assert.True(t, ok)
	assert.Equal(t, "150.5", v.String())

	_, ok = currency.ParseAny(nil)
	assert.False(t, ok)

	_, ok = currency.ParseAny("abc")
	assert.False(t, ok)

	v, ok = currency.ParseAny(decimal.NewFromInt(7))
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(7)))
}

func TestFormat_ConvencionIndia(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₹0.00"},
		{"5", "₹5.00"},
		{"999.999", "₹1,000.00"},
		{"1234.5", "₹1,234.50"},
		{"123456.78", "₹1,23,456.78"},
		{"6000000", "₹60,00,000.00"},
		{"123456789.1", "₹12,34,56,789.10"},
		{"-1234", "-₹1,234.00"},
		{"-0.001", "₹0.00"},
		{"0.005", "₹0.01"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, currency.Format(decimal.RequireFromString(tc.in)))
		})
	}
}

// Para todo importe con dos decimales, Parse(Format(a)) == a.
func TestFormatParse_IdaYVuelta(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		cents := rnd.Int63n(100_000_000_000) - 10_000_000_000
		a := decimal.New(cents, -2)
		got := currency.Parse(currency.Format(a))
		assert.True(t, got.Equal(a), "ida y vuelta de %s produjo %s", a, got)
	}
	assert.True(t, currency.Parse(currency.Format(decimal.Zero)).IsZero())
}

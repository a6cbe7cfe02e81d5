// Package currency convierte importes entre texto ingresado por el usuario y
// decimal.Decimal, y formatea importes con la convención fija en-IN
// (símbolo ₹, agrupación lakh/crore y dos decimales): ₹1,23,456.78.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Symbol es el prefijo de moneda de la convención fija.
const Symbol = "₹"

// Parse interpreta texto libre como importe. Nunca falla: cualquier entrada
// malformada o vacía devuelve cero.
func Parse(text string) decimal.Decimal {
	d, _ := TryParse(text)
	return d
}

// TryParse es Parse con indicador de validez: ok es false cuando, tras limpiar
// la decoración, no queda un número (en ese caso d es cero).
//
// Se conservan solo dígitos, puntos y un signo menos inicial. Si sobreviven
// varios puntos se conservan los dos primeros segmentos ("1.2.3" -> "1.2").
func TryParse(text string) (d decimal.Decimal, ok bool) {
	cleaned := clean(text)
	if cleaned == "" {
		return decimal.Zero, false
	}
	neg := strings.HasPrefix(cleaned, "-")
	body := strings.TrimPrefix(cleaned, "-")

	parts := strings.Split(body, ".")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return decimal.Zero, false
	}
	if intPart == "" {
		intPart = "0"
	}
	num := intPart
	if fracPart != "" {
		num += "." + fracPart
	}
	if neg {
		num = "-" + num
	}
	v, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// ParseAny acepta lo que llegue desde la capa de presentación (string, número
// JSON, nil) y lo interpreta con TryParse.
func ParseAny(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return t, true
	case *decimal.Decimal:
		if t == nil {
			return decimal.Zero, false
		}
		return *t, true
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Zero, false
	}
	return TryParse(s)
}

// clean descarta todo lo que no sea dígito o punto; el menos solo se conserva
// si aparece antes de cualquier dígito o punto.
func clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format representa amount como "₹1,23,456.78" (negativos como "-₹1,234.00").
// El redondeo a dos decimales es half away from zero.
func Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	neg := rounded.IsNegative()
	s := rounded.Abs().StringFixed(2)

	intPart, fracPart := s, "00"
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	out := Symbol + groupIndian(intPart) + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// groupIndian agrupa los últimos tres dígitos y el resto de a dos.
// Ej: "6000000" -> "60,00,000", "123456" -> "1,23,456".
func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	head, tail := s[:n-3], s[n-3:]
	buf := make([]byte, 0, n+n/2)
	for i, c := range []byte(head) {
		if i > 0 && (len(head)-i)%2 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	buf = append(buf, ',')
	buf = append(buf, tail...)
	return string(buf)
}

package rendering

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"fractional euro keeps cents", 9.99, "EUR", "€9.99"},
		{"whole euro drops cents", 10, "EUR", "€10"},
		{"us dollar", 49.5, "USD", "$49.50"},
		{"pound", 19.99, "GBP", "£19.99"},
		{"hryvnia", 450, "UAH", "₴450"},
		{"real uses compound symbol", 99.9, "BRL", "R$99.90"},
		{"lowercase code resolves", 9.99, "eur", "€9.99"},
		{"unknown code falls back to prefix", 25, "CHF", "CHF 25"},
		{"empty code renders bare amount", 7.5, "", "7.50"},
		{"zero", 0, "USD", "$0"},
		{"negative zero normalizes", math.Copysign(0, -1), "USD", "$0"},
		{"rounds to zero drops the sign", -0.001, "EUR", "€0"},
		{"negative amount keeps the sign", -5.5, "USD", "$-5.50"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPrice(tc.amount, tc.currency))
		})
	}
}

package rendering

import (
	"strconv"
	"strings"
)

// currencySymbols maps ISO currency codes to display symbols. Codes outside
// the table render as "CODE amount".
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"UAH": "₴",
	"INR": "₹",
	"KRW": "₩",
	"BRL": "R$",
}

// FormatPrice renders an amount in the given currency. Whole amounts carry
// no decimals ("€10"), fractional amounts keep two ("€9.99").
func FormatPrice(amount float64, currency string) string {
	formatted := strconv.FormatFloat(amount, 'f', 2, 64)
	formatted = strings.TrimSuffix(formatted, ".00")
	// Amounts that round to zero never carry a negative sign.
	if formatted == "-0" {
		formatted = "0"
	}

	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if ok {
		return symbol + formatted
	}
	if currency == "" {
		return formatted
	}
	return currency + " " + formatted
}

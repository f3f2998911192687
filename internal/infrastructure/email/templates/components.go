// Package templates provides reusable email content components
package templates

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// GetHeading renders an email section heading.
func GetHeading(text string) string {
	return fmt.Sprintf(`<h2 style="margin:0 0 16px;color:#1a1a2e;">%s</h2>`, html.EscapeString(text))
}

// GetParagraph renders an escaped paragraph of body text.
func GetParagraph(text string) string {
	return fmt.Sprintf(`<p style="margin:0 0 16px;color:#333;">%s</p>`, html.EscapeString(text))
}

// OrderSummaryProps describes one order line set for the notification email.
type OrderSummaryProps struct {
	ProductName string
	Price       string
	FullName    string
	Phone       string
	City        string
	Address     string
	Attributes  map[string]string
}

// GetOrderSummaryTable renders the order details as a two-column table.
func GetOrderSummaryTable(props OrderSummaryProps) string {
	rows := []struct{ label, value string }{
		{"Product", props.ProductName},
		{"Price", props.Price},
		{"Customer", props.FullName},
		{"Phone", props.Phone},
		{"City", props.City},
		{"Address", props.Address},
	}

	var out strings.Builder
	out.WriteString(`<table style="width:100%;border-collapse:collapse;margin:0 0 16px;">`)
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		writeSummaryRow(&out, row.label, row.value)
	}

	attrNames := make([]string, 0, len(props.Attributes))
	for name := range props.Attributes {
		attrNames = append(attrNames, name)
	}
	sort.Strings(attrNames)
	for _, name := range attrNames {
		writeSummaryRow(&out, name, props.Attributes[name])
	}

	out.WriteString(`</table>`)
	return out.String()
}

func writeSummaryRow(out *strings.Builder, label, value string) {
	fmt.Fprintf(out,
		`<tr><td style="padding:8px;border-bottom:1px solid #eaebed;color:#9a9ea6;">%s</td>`+
			`<td style="padding:8px;border-bottom:1px solid #eaebed;color:#1a1a2e;">%s</td></tr>`,
		html.EscapeString(label), html.EscapeString(value))
}

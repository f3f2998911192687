package elements

import (
	"html"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// ProductPriceRenderer handles product price elements
type ProductPriceRenderer struct {
	ctx *rendering.RenderContext
}

// NewProductPriceRenderer creates a new product price renderer
func NewProductPriceRenderer(ctx *rendering.RenderContext) *ProductPriceRenderer {
	return &ProductPriceRenderer{ctx: ctx}
}

// Render shows the selling price, preceded by the struck-through regular
// price only when one is present and strictly greater.
func (ppr *ProductPriceRenderer) Render(nodeID string) string {
	node := ppr.ctx.Node(nodeID)
	product := ppr.ctx.Product
	if node == nil || product == nil {
		return RenderEmptyNode()
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	if product.RegularPrice != nil && *product.RegularPrice > product.Price {
		out.WriteString(`<s class="lp-regular-price">`)
		out.WriteString(html.EscapeString(rendering.FormatPrice(*product.RegularPrice, product.Currency)))
		out.WriteString(`</s> `)
	}
	out.WriteString(`<span class="lp-price">`)
	out.WriteString(html.EscapeString(rendering.FormatPrice(product.Price, product.Currency)))
	out.WriteString(`</span>`)
	out.WriteString(`</div>`)
	return out.String()
}

package elements

import (
	"html"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// ProductTitleRenderer handles product title elements
type ProductTitleRenderer struct {
	ctx *rendering.RenderContext
}

// NewProductTitleRenderer creates a new product title renderer
func NewProductTitleRenderer(ctx *rendering.RenderContext) *ProductTitleRenderer {
	return &ProductTitleRenderer{ctx: ctx}
}

func (ptr *ProductTitleRenderer) Render(nodeID string) string {
	node := ptr.ctx.Node(nodeID)
	if node == nil || ptr.ctx.Product == nil {
		return RenderEmptyNode()
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	out.WriteString("<h1>")
	out.WriteString(html.EscapeString(ptr.ctx.Product.Name))
	out.WriteString("</h1>")
	out.WriteString(`</div>`)
	return out.String()
}

package elements

import (
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// ProductDescriptionRenderer handles product description elements. Whether
// the description is treated as markup or literal text is decided by the
// shared heuristic in rendering.DescriptionHTML, the same one the code-mode
// compiler uses.
type ProductDescriptionRenderer struct {
	ctx *rendering.RenderContext
}

// NewProductDescriptionRenderer creates a new product description renderer
func NewProductDescriptionRenderer(ctx *rendering.RenderContext) *ProductDescriptionRenderer {
	return &ProductDescriptionRenderer{ctx: ctx}
}

func (pdr *ProductDescriptionRenderer) Render(nodeID string) string {
	node := pdr.ctx.Node(nodeID)
	if node == nil || pdr.ctx.Product == nil {
		return RenderEmptyNode()
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	out.WriteString(rendering.DescriptionHTML(pdr.ctx.Product.Description))
	out.WriteString(`</div>`)
	return out.String()
}

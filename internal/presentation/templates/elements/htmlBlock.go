package elements

import (
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// HTMLBlockRenderer handles raw HTML block elements. The content is
// author-provided markup and passes through untouched.
type HTMLBlockRenderer struct {
	ctx *rendering.RenderContext
}

// NewHTMLBlockRenderer creates a new html block renderer
func NewHTMLBlockRenderer(ctx *rendering.RenderContext) *HTMLBlockRenderer {
	return &HTMLBlockRenderer{ctx: ctx}
}

func (hbr *HTMLBlockRenderer) Render(nodeID string) string {
	node := hbr.ctx.Node(nodeID)
	if node == nil {
		return RenderEmptyNode()
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	out.WriteString(node.Content)
	out.WriteString(`</div>`)
	return out.String()
}

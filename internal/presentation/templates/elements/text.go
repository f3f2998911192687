package elements

import (
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// TextRenderer handles free-form text elements
type TextRenderer struct {
	ctx *rendering.RenderContext
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(ctx *rendering.RenderContext) *TextRenderer {
	return &TextRenderer{ctx: ctx}
}

func (tr *TextRenderer) Render(nodeID string) string {
	node := tr.ctx.Node(nodeID)
	if node == nil {
		return RenderEmptyNode()
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	out.WriteString("<p>")
	out.WriteString(rendering.TextToHTML(node.Content))
	out.WriteString("</p>")
	out.WriteString(`</div>`)
	return out.String()
}

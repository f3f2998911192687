package elements

import (
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// SeparatorRenderer handles horizontal separator elements
type SeparatorRenderer struct {
	ctx *rendering.RenderContext
}

// NewSeparatorRenderer creates a new separator renderer
func NewSeparatorRenderer(ctx *rendering.RenderContext) *SeparatorRenderer {
	return &SeparatorRenderer{ctx: ctx}
}

func (sr *SeparatorRenderer) Render(nodeID string) string {
	node := sr.ctx.Node(nodeID)
	if node == nil {
		return RenderEmptyNode()
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	out.WriteString(`<hr />`)
	out.WriteString(`</div>`)
	return out.String()
}

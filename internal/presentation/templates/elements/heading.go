package elements

import (
	"html"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// headingLevels is the allowlist for the level prop; anything else falls
// back to h2.
var headingLevels = map[string]string{
	"1": "h1", "2": "h2", "3": "h3", "4": "h4", "5": "h5", "6": "h6",
}

// HeadingRenderer handles heading elements
type HeadingRenderer struct {
	ctx *rendering.RenderContext
}

// NewHeadingRenderer creates a new heading renderer
func NewHeadingRenderer(ctx *rendering.RenderContext) *HeadingRenderer {
	return &HeadingRenderer{ctx: ctx}
}

func (hr *HeadingRenderer) Render(nodeID string) string {
	node := hr.ctx.Node(nodeID)
	if node == nil {
		return RenderEmptyNode()
	}

	tag, ok := headingLevels[node.Props["level"]]
	if !ok {
		tag = "h2"
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	out.WriteString("<" + tag + ">")
	out.WriteString(html.EscapeString(node.Content))
	out.WriteString("</" + tag + ">")
	out.WriteString(`</div>`)
	return out.String()
}

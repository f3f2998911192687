package elements

import (
	"html"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// FeatureItemRenderer handles single feature/benefit elements
type FeatureItemRenderer struct {
	ctx *rendering.RenderContext
}

// NewFeatureItemRenderer creates a new feature item renderer
func NewFeatureItemRenderer(ctx *rendering.RenderContext) *FeatureItemRenderer {
	return &FeatureItemRenderer{ctx: ctx}
}

func (fir *FeatureItemRenderer) Render(nodeID string) string {
	node := fir.ctx.Node(nodeID)
	if node == nil {
		return RenderEmptyNode()
	}

	icon := node.Props["icon"]
	if icon == "" {
		icon = "check"
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	out.WriteString(`<span class="lp-feature-icon" data-icon="` + html.EscapeString(icon) + `"></span>`)
	out.WriteString(`<span class="lp-feature-text">`)
	out.WriteString(html.EscapeString(node.Content))
	out.WriteString(`</span>`)
	out.WriteString(`</div>`)
	return out.String()
}

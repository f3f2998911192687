package elements

import (
	"html"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// TrustBadgesRenderer handles trust badge strips. Content is a
// pipe-separated list of badge labels.
type TrustBadgesRenderer struct {
	ctx *rendering.RenderContext
}

// NewTrustBadgesRenderer creates a new trust badges renderer
func NewTrustBadgesRenderer(ctx *rendering.RenderContext) *TrustBadgesRenderer {
	return &TrustBadgesRenderer{ctx: ctx}
}

func (tbr *TrustBadgesRenderer) Render(nodeID string) string {
	node := tbr.ctx.Node(nodeID)
	if node == nil {
		return RenderEmptyNode()
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	out.WriteString(`<ul class="lp-badges">`)
	for _, badge := range strings.Split(node.Content, "|") {
		badge = strings.TrimSpace(badge)
		if badge == "" {
			continue
		}
		out.WriteString(`<li>`)
		out.WriteString(html.EscapeString(badge))
		out.WriteString(`</li>`)
	}
	out.WriteString(`</ul>`)
	out.WriteString(`</div>`)
	return out.String()
}

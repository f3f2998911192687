package elements

import (
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// ContainerRenderer handles section and container elements: pass-through
// wrappers around their resolved children.
type ContainerRenderer struct {
	ctx          *rendering.RenderContext
	nodeRenderer NodeRenderer
}

// NewContainerRenderer creates a new container renderer
func NewContainerRenderer(ctx *rendering.RenderContext, nodeRenderer NodeRenderer) *ContainerRenderer {
	return &ContainerRenderer{ctx: ctx, nodeRenderer: nodeRenderer}
}

// Render wraps the container's children; a childless container shows the
// empty drop placeholder instead.
func (cr *ContainerRenderer) Render(nodeID string) string {
	node := cr.ctx.Node(nodeID)
	if node == nil {
		return RenderEmptyNode()
	}

	var html strings.Builder
	writeOpenTag(&html, node)

	childNodeIDs := cr.nodeRenderer.GetChildNodeIDs(nodeID)
	if len(childNodeIDs) == 0 {
		html.WriteString(`<div class="lp-empty">Drop elements here</div>`)
	} else {
		for _, childID := range childNodeIDs {
			html.WriteString(cr.nodeRenderer.RenderNode(childID))
		}
	}

	html.WriteString(`</div>`)
	return html.String()
}

// Package templates provides element rendering for the visual page surface
package templates

import (
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"

	elements "github.com/pagemint/pagemint-go/internal/presentation/templates/elements"
)

// NodeRenderer interface for child node rendering
type NodeRenderer interface {
	RenderNode(nodeID string) string
	GetChildNodeIDs(nodeID string) []string
}

// NodeRendererImpl dispatches every element kind to its renderer.
type NodeRendererImpl struct {
	ctx *rendering.RenderContext
}

// NewNodeRenderer creates a new node renderer with context
func NewNodeRenderer(ctx *rendering.RenderContext) *NodeRendererImpl {
	return &NodeRendererImpl{ctx: ctx}
}

// RenderPage renders every root element of the context's document in order.
func (nr *NodeRendererImpl) RenderPage() string {
	var html strings.Builder
	for _, rootID := range nr.ctx.Tree.Roots {
		html.WriteString(nr.RenderNode(rootID))
	}
	return html.String()
}

// RenderNode renders a node by id. Unknown ids and unknown kinds render as
// an empty node rather than failing the surrounding page.
func (nr *NodeRendererImpl) RenderNode(nodeID string) string {
	if nodeID == "" {
		return elements.RenderEmptyNode()
	}

	node := nr.ctx.Node(nodeID)
	if node == nil {
		return elements.RenderEmptyNode()
	}

	switch node.Kind {
	case tree.KindSection, tree.KindContainer:
		return elements.NewContainerRenderer(nr.ctx, nr).Render(nodeID)
	case tree.KindHeading:
		return elements.NewHeadingRenderer(nr.ctx).Render(nodeID)
	case tree.KindText:
		return elements.NewTextRenderer(nr.ctx).Render(nodeID)
	case tree.KindImage:
		return elements.NewImageRenderer(nr.ctx).Render(nodeID)
	case tree.KindButton:
		return elements.NewButtonRenderer(nr.ctx).Render(nodeID)
	case tree.KindHTMLBlock:
		return elements.NewHTMLBlockRenderer(nr.ctx).Render(nodeID)
	case tree.KindSeparator:
		return elements.NewSeparatorRenderer(nr.ctx).Render(nodeID)
	case tree.KindProductTitle:
		return elements.NewProductTitleRenderer(nr.ctx).Render(nodeID)
	case tree.KindProductPrice:
		return elements.NewProductPriceRenderer(nr.ctx).Render(nodeID)
	case tree.KindProductDescription:
		return elements.NewProductDescriptionRenderer(nr.ctx).Render(nodeID)
	case tree.KindProductGallery:
		return elements.NewProductGalleryRenderer(nr.ctx).Render(nodeID)
	case tree.KindOrderForm:
		return elements.NewOrderFormRenderer(nr.ctx).Render(nodeID)
	case tree.KindTrustBadges:
		return elements.NewTrustBadgesRenderer(nr.ctx).Render(nodeID)
	case tree.KindFeatureItem:
		return elements.NewFeatureItemRenderer(nr.ctx).Render(nodeID)
	case tree.KindProductReviews:
		return elements.NewProductReviewsRenderer(nr.ctx).Render(nodeID)
	default:
		return elements.RenderEmptyNode()
	}
}

// GetChildNodeIDs returns child node ids for a given parent
func (nr *NodeRendererImpl) GetChildNodeIDs(parentID string) []string {
	return nr.ctx.ChildNodeIDs(parentID)
}

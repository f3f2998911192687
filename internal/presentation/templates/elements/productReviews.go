package elements

import (
	"html"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// ProductReviewsRenderer handles product review list elements
type ProductReviewsRenderer struct {
	ctx *rendering.RenderContext
}

// NewProductReviewsRenderer creates a new product reviews renderer
func NewProductReviewsRenderer(ctx *rendering.RenderContext) *ProductReviewsRenderer {
	return &ProductReviewsRenderer{ctx: ctx}
}

func (prr *ProductReviewsRenderer) Render(nodeID string) string {
	node := prr.ctx.Node(nodeID)
	product := prr.ctx.Product
	if node == nil || product == nil || !product.ShowReviews || len(product.Reviews) == 0 {
		return RenderEmptyNode()
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	out.WriteString(`<div class="lp-reviews">`)
	for _, review := range product.Reviews {
		out.WriteString(`<div class="lp-review">`)
		out.WriteString(`<span class="lp-review-stars">` + stars(review.Rating) + `</span>`)
		out.WriteString(`<span class="lp-review-author">` + html.EscapeString(review.Author) + `</span>`)
		out.WriteString(`<p>` + html.EscapeString(review.Text) + `</p>`)
		out.WriteString(`</div>`)
	}
	out.WriteString(`</div>`)
	out.WriteString(`</div>`)
	return out.String()
}

// stars renders a 1..5 rating; out-of-range values clamp.
func stars(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

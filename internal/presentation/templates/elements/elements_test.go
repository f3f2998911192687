package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
)

// fakeChildRenderer stands in for the dispatching renderer so container
// tests stay local to this package.
type fakeChildRenderer struct {
	children map[string][]string
}

func (f *fakeChildRenderer) RenderNode(nodeID string) string {
	return "<child:" + nodeID + ">"
}

func (f *fakeChildRenderer) GetChildNodeIDs(nodeID string) []string {
	return f.children[nodeID]
}

func contextWith(node tree.PageElement, product *content.Product, form *rendering.FormState) *rendering.RenderContext {
	t := tree.FromElements([]tree.PageElement{node})
	return rendering.NewRenderContext(t, product, form)
}

func TestContainerRendersChildrenInOrder(t *testing.T) {
	section := tree.NewDefaultElement(tree.KindSection)
	ctx := contextWith(section, nil, nil)
	children := &fakeChildRenderer{children: map[string][]string{
		section.ID: {"a", "b"},
	}}

	html := NewContainerRenderer(ctx, children).Render(section.ID)

	assert.Contains(t, html, "<child:a><child:b>")
	assert.NotContains(t, html, "lp-empty")
}

func TestContainerWithoutChildrenShowsDropPlaceholder(t *testing.T) {
	section := tree.NewDefaultElement(tree.KindSection)
	ctx := contextWith(section, nil, nil)
	children := &fakeChildRenderer{children: map[string][]string{}}

	html := NewContainerRenderer(ctx, children).Render(section.ID)

	assert.Contains(t, html, `<div class="lp-empty">Drop elements here</div>`)
}

func TestProductPriceStrikesRegularPriceOnlyWhenGreater(t *testing.T) {
	node := tree.NewDefaultElement(tree.KindProductPrice)
	product := &content.Product{Name: "Widget", Price: 9.99, Currency: "EUR"}

	html := NewProductPriceRenderer(contextWith(node, product, nil)).Render(node.ID)
	assert.Contains(t, html, `<span class="lp-price">€9.99</span>`)
	assert.NotContains(t, html, "lp-regular-price")

	regular := 19.99
	product.RegularPrice = &regular
	html = NewProductPriceRenderer(contextWith(node, product, nil)).Render(node.ID)
	assert.Contains(t, html, `<s class="lp-regular-price">€19.99</s>`)

	// A regular price at or below the selling price is not a discount.
	equal := 9.99
	product.RegularPrice = &equal
	html = NewProductPriceRenderer(contextWith(node, product, nil)).Render(node.ID)
	assert.NotContains(t, html, "lp-regular-price")
}

func TestProductPriceWithoutProduct(t *testing.T) {
	node := tree.NewDefaultElement(tree.KindProductPrice)
	html := NewProductPriceRenderer(contextWith(node, nil, nil)).Render(node.ID)
	assert.Equal(t, RenderEmptyNode(), html)
}

func TestOrderFormRendersInputsAndButtonLabel(t *testing.T) {
	node := tree.NewDefaultElement(tree.KindOrderForm)
	node.Props["buttonLabel"] = "Buy it now"
	product := &content.Product{
		Name: "Widget",
		Attributes: []content.ProductAttribute{
			{Name: "Color", Options: []string{"Red", "Blue"}},
		},
	}
	form := &rendering.FormState{
		Fields:   rendering.ContactFields{City: "Kyiv"},
		Selected: map[string]string{"Color": "Red"},
	}

	html := NewOrderFormRenderer(contextWith(node, product, form)).Render(node.ID)

	assert.Contains(t, html, `id="`+rendering.InputCityID+`" value="Kyiv"`)
	assert.Contains(t, html, `id="`+rendering.SubmitButtonID+`">Buy it now</button>`)
	assert.Contains(t, html, `value="Red" checked`)
	assert.Contains(t, html, rendering.AttributeNamePrefix+"Color")
}

func TestRenderAttributeGroupMarksSelection(t *testing.T) {
	attribute := content.ProductAttribute{Name: "Size", Options: []string{"S", "M"}}

	html := RenderAttributeGroup(attribute, "M")

	assert.Contains(t, html, `class="lp-attr-option selected"`)
	assert.Contains(t, html, `value="M" checked`)
	assert.Contains(t, html, `value="S" />`)
}

func TestRenderMediaItem(t *testing.T) {
	embed := RenderMediaItem(rendering.MediaItem{Kind: rendering.MediaEmbed, Source: "https://www.youtube.com/embed/abc"})
	assert.Contains(t, embed, "<iframe")

	video := RenderMediaItem(rendering.MediaItem{Kind: rendering.MediaVideo, Source: "https://cdn.example.com/a.mp4"})
	assert.Contains(t, video, "<video")
	assert.Contains(t, video, "muted")

	image := RenderMediaItem(rendering.MediaItem{Kind: rendering.MediaImage, Source: ""})
	assert.Contains(t, image, rendering.PlaceholderImage)
}

func TestRenderThumbnailStrip(t *testing.T) {
	media := []rendering.MediaItem{
		{Kind: rendering.MediaImage, Source: "/media/a.webp"},
		{Kind: rendering.MediaVideo, Source: "/media/b.mp4"},
	}

	html := RenderThumbnailStrip(media, 1)

	assert.Contains(t, html, `class="`+rendering.GalleryThumbClass+`" data-index="0"`)
	assert.Contains(t, html, `class="`+rendering.GalleryThumbClass+` active" data-index="1"`)
	assert.Contains(t, html, "lp-thumb-video")

	// Out-of-range active index falls back to the first thumbnail.
	html = RenderThumbnailStrip(media, 9)
	assert.Contains(t, html, `class="`+rendering.GalleryThumbClass+` active" data-index="0"`)
}

func TestProductGalleryUsesFormMediaIndex(t *testing.T) {
	node := tree.NewDefaultElement(tree.KindProductGallery)
	product := &content.Product{
		Name:   "Widget",
		Images: []string{"/media/a.webp", "/media/b.webp"},
	}
	form := &rendering.FormState{MediaIndex: 1}

	html := NewProductGalleryRenderer(contextWith(node, product, form)).Render(node.ID)

	assert.Contains(t, html, `data-media-count="2"`)
	assert.Contains(t, html, `<div class="lp-gallery-main"><img src="/media/b.webp"`)
	assert.Contains(t, html, "lp-gallery-prev")
}

func TestProductReviewsGating(t *testing.T) {
	node := tree.NewDefaultElement(tree.KindProductReviews)
	product := &content.Product{
		Name:    "Widget",
		Reviews: []content.ProductReview{{Author: "Olena", Rating: 4, Text: "Great"}},
	}

	// Hidden until the product opts in.
	html := NewProductReviewsRenderer(contextWith(node, product, nil)).Render(node.ID)
	assert.Equal(t, RenderEmptyNode(), html)

	product.ShowReviews = true
	html = NewProductReviewsRenderer(contextWith(node, product, nil)).Render(node.ID)
	assert.Contains(t, html, "★★★★☆")
	assert.Contains(t, html, "Olena")
}

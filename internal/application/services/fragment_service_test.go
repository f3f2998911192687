package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
)

func testProduct() *content.Product {
	return &content.Product{
		ID:       "prod-1",
		OwnerID:  "owner-1",
		Name:     "Widget",
		Price:    9.99,
		Currency: "EUR",
	}
}

func pageWithHeading(headline string) *content.LandingPage {
	heading := tree.NewDefaultElement(tree.KindHeading)
	heading.Content = headline
	return &content.LandingPage{
		ID:       "page-1",
		OwnerID:  "owner-1",
		Name:     "Launch page",
		Mode:     content.ModeVisual,
		Elements: []tree.PageElement{heading},
	}
}

func TestRenderPageVisualMode(t *testing.T) {
	svc := newTestFragmentService(t, newFakePageRepo(pageWithHeading("Big launch")), newFakeProductRepo())

	result, err := svc.RenderPage("page-1", "", nil)
	require.NoError(t, err)
	assert.Contains(t, result.HTML, "Big launch")
	assert.Empty(t, result.Slots)
}

func TestRenderPageMissingPage(t *testing.T) {
	svc := newTestFragmentService(t, newFakePageRepo(), newFakeProductRepo())

	_, err := svc.RenderPage("missing", "", nil)
	assert.Error(t, err)
}

func TestRenderPageBareRenderIsCached(t *testing.T) {
	pageRepo := newFakePageRepo(pageWithHeading("Big launch"))
	svc := newTestFragmentService(t, pageRepo, newFakeProductRepo())

	_, err := svc.RenderPage("page-1", "", nil)
	require.NoError(t, err)
	require.Equal(t, 1, pageRepo.findCalls)

	// Second bare render is served from the fragment cache.
	result, err := svc.RenderPage("page-1", "", nil)
	require.NoError(t, err)
	assert.Contains(t, result.HTML, "Big launch")
	assert.Equal(t, 1, pageRepo.findCalls)

	svc.InvalidatePage("page-1")
	_, err = svc.RenderPage("page-1", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, pageRepo.findCalls)
}

func TestRenderPageFormRendersBypassTheCache(t *testing.T) {
	pageRepo := newFakePageRepo(pageWithHeading("Big launch"))
	svc := newTestFragmentService(t, pageRepo, newFakeProductRepo())

	form := &rendering.FormState{}
	_, err := svc.RenderPage("page-1", "", form)
	require.NoError(t, err)
	_, err = svc.RenderPage("page-1", "", form)
	require.NoError(t, err)

	assert.Equal(t, 2, pageRepo.findCalls)
}

func TestRenderPageProductVariantsAreCachedSeparately(t *testing.T) {
	title := tree.NewDefaultElement(tree.KindProductTitle)
	page := pageWithHeading("Big launch")
	page.Elements = append(page.Elements, title)
	pageRepo := newFakePageRepo(page)
	svc := newTestFragmentService(t, pageRepo, newFakeProductRepo(testProduct()))

	bare, err := svc.RenderPage("page-1", "", nil)
	require.NoError(t, err)
	bound, err := svc.RenderPage("page-1", "prod-1", nil)
	require.NoError(t, err)

	assert.NotContains(t, bare.HTML, "Widget")
	assert.Contains(t, bound.HTML, "Widget")

	// Invalidating the product drops only fragments rendered against it.
	calls := pageRepo.findCalls
	svc.InvalidateProduct("prod-1")
	_, err = svc.RenderPage("page-1", "", nil)
	require.NoError(t, err)
	assert.Equal(t, calls, pageRepo.findCalls)
	_, err = svc.RenderPage("page-1", "prod-1", nil)
	require.NoError(t, err)
	assert.Equal(t, calls+1, pageRepo.findCalls)
}

func TestRenderPageCodeModeCompilesAndKeepsSlots(t *testing.T) {
	page := &content.LandingPage{
		ID:       "page-1",
		OwnerID:  "owner-1",
		Mode:     content.ModeCode,
		HTMLCode: "<h1>{product_name} - {product_price}</h1>{order_form}",
	}
	pageRepo := newFakePageRepo(page)
	svc := newTestFragmentService(t, pageRepo, newFakeProductRepo(testProduct()))

	result, err := svc.RenderPage("page-1", "prod-1", nil)
	require.NoError(t, err)
	assert.Contains(t, result.HTML, "<h1>Widget - €9.99</h1>")
	assert.NotEmpty(t, result.Slots)

	// Code pages are never cached, so repeat renders keep their slots.
	again, err := svc.RenderPage("page-1", "prod-1", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, again.Slots)
	assert.Equal(t, 2, pageRepo.findCalls)
}

func TestRenderTreeBypassesStore(t *testing.T) {
	svc := newTestFragmentService(t, newFakePageRepo(), newFakeProductRepo(testProduct()))

	heading := tree.NewDefaultElement(tree.KindHeading)
	heading.Content = "Unsaved edit"
	working := tree.FromElements([]tree.PageElement{heading})

	html, err := svc.RenderTree(working, "prod-1", nil)
	require.NoError(t, err)
	assert.Contains(t, html, "Unsaved edit")
}

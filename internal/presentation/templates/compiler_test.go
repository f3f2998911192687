package templates

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

func widgetProduct() *content.Product {
	return &content.Product{
		ID:       "prod-1",
		OwnerID:  "owner-1",
		Name:     "Widget",
		Price:    9.99,
		Currency: "EUR",
	}
}

func TestCompileScalarSubstitution(t *testing.T) {
	compiler := NewTemplateCompiler(widgetProduct(), nil)

	result := compiler.Compile("{product_name} - {product_price}")

	assert.Equal(t, "Widget - €9.99", result.HTML)
	assert.Empty(t, result.Slots)
}

func TestCompileEscapesProductValues(t *testing.T) {
	product := widgetProduct()
	product.Name = `<b>"Widget"</b>`
	compiler := NewTemplateCompiler(product, nil)

	result := compiler.Compile("{product_name}")

	assert.NotContains(t, result.HTML, "<b>")
	assert.Contains(t, result.HTML, "&lt;b&gt;")
}

func TestCompileRegularPrice(t *testing.T) {
	product := widgetProduct()
	compiler := NewTemplateCompiler(product, nil)

	// Absent regular price substitutes as empty, never a nil marker.
	result := compiler.Compile("was {product_regular_price}")
	assert.Equal(t, "was ", result.HTML)

	regular := 19.99
	product.RegularPrice = &regular
	result = NewTemplateCompiler(product, nil).Compile("was {product_regular_price}")
	assert.Equal(t, "was €19.99", result.HTML)
}

func TestCompileSKUGatedByShowSKU(t *testing.T) {
	product := widgetProduct()
	sku := "WID-001"
	product.SKU = &sku

	result := NewTemplateCompiler(product, nil).Compile("SKU: {product_sku}")
	assert.Equal(t, "SKU: ", result.HTML)

	product.ShowSKU = true
	result = NewTemplateCompiler(product, nil).Compile("SKU: {product_sku}")
	assert.Equal(t, "SKU: WID-001", result.HTML)
}

func TestCompileDescriptionMarkupHeuristic(t *testing.T) {
	product := widgetProduct()
	product.Description = "<p>Rich copy</p>"
	result := NewTemplateCompiler(product, nil).Compile("{product_description}")
	assert.Equal(t, "<p>Rich copy</p>", result.HTML)

	product.Description = "plain & simple\nsecond line"
	result = NewTemplateCompiler(product, nil).Compile("{product_description}")
	assert.Equal(t, "plain &amp; simple<br />second line", result.HTML)
}

func TestCompileIndexedImages(t *testing.T) {
	product := widgetProduct()
	product.Images = []string{"/media/a.webp", "/media/b.webp"}
	compiler := NewTemplateCompiler(product, nil)

	result := compiler.Compile("{product_image_0}|{product_image_1}|{product_image_2}|{product_image_3}")

	assert.Equal(t, "/media/a.webp|/media/b.webp||", result.HTML)
}

func TestCompileUnknownTagsPassThrough(t *testing.T) {
	compiler := NewTemplateCompiler(widgetProduct(), nil)

	result := compiler.Compile("{product_image_4} {made_up_tag} {price}")

	assert.Equal(t, "{product_image_4} {made_up_tag} {price}", result.HTML)
}

func TestCompileNilProduct(t *testing.T) {
	compiler := NewTemplateCompiler(nil, nil)

	result := compiler.Compile("{product_name}-{product_price}-{product_image_carousel}")

	// Scalars go empty; the carousel still renders its empty shell.
	assert.True(t, strings.HasPrefix(result.HTML, "--"))
	assert.Contains(t, result.HTML, `data-media-count="0"`)
	assert.Empty(t, result.Slots)
}

func TestCompileCarouselEmitsGallerySlots(t *testing.T) {
	product := widgetProduct()
	product.Images = []string{"/media/a.webp", "/media/b.webp", "/media/c.webp"}
	compiler := NewTemplateCompiler(product, nil)

	result := compiler.Compile("{product_image_carousel}")

	assert.Contains(t, result.HTML, fmt.Sprintf(`id="%s"`, rendering.GalleryID))
	assert.Contains(t, result.HTML, fmt.Sprintf(`id="%s"`, rendering.GalleryMainID))
	assert.Contains(t, result.HTML, `data-media-count="3"`)
	assert.Contains(t, result.HTML, rendering.GalleryThumbClass)
	assert.Contains(t, result.HTML, "/media/a.webp")

	mains := result.FindSlots(rendering.SlotGalleryMain)
	require.Len(t, mains, 1)
	assert.Equal(t, "/media/a.webp", mains[0].Source)

	thumbs := result.FindSlots(rendering.SlotGalleryThumb)
	require.Len(t, thumbs, 3)
	for i, thumb := range thumbs {
		assert.Equal(t, i, thumb.Index)
	}

	navs := result.FindSlots(rendering.SlotGalleryNav)
	require.Len(t, navs, 2)
	assert.Equal(t, rendering.GalleryPrevID, navs[0].DOMID)
	assert.Equal(t, rendering.GalleryNextID, navs[1].DOMID)
}

func TestCompileCarouselSingleImageSkipsThumbStrip(t *testing.T) {
	product := widgetProduct()
	product.Images = []string{"/media/only.webp"}

	result := NewTemplateCompiler(product, nil).Compile("{product_image_carousel}")

	assert.NotContains(t, result.HTML, rendering.GalleryThumbClass)
	require.Len(t, result.FindSlots(rendering.SlotGalleryThumb), 1)
	assert.Empty(t, result.FindSlots(rendering.SlotGalleryNav))
}

func TestCompileAttributesSelector(t *testing.T) {
	product := widgetProduct()
	product.Attributes = []content.ProductAttribute{
		{Name: "Color", Options: []string{"Red", "Blue"}},
		{Name: "Size", Options: []string{"M"}},
	}
	form := &rendering.FormState{Selected: map[string]string{"Color": "Blue"}}

	result := NewTemplateCompiler(product, form).Compile("{attributes_selector}")

	assert.Contains(t, result.HTML, "Color")
	assert.Contains(t, result.HTML, `value="Blue" checked`)
	assert.NotContains(t, result.HTML, `value="Red" checked`)

	options := result.FindSlots(rendering.SlotAttributeOption)
	require.Len(t, options, 3)
	assert.Equal(t, "Color", options[0].Name)
	assert.Equal(t, "Red", options[0].Value)
	assert.Equal(t, "Size", options[2].Name)
}

func TestCompileAttributesSelectorWithoutAttributes(t *testing.T) {
	result := NewTemplateCompiler(widgetProduct(), nil).Compile("x{attributes_selector}y")
	assert.Equal(t, "xy", result.HTML)
}

func TestCompileOrderForm(t *testing.T) {
	form := &rendering.FormState{
		Fields: rendering.ContactFields{FullName: "Ada Lovelace", Phone: "+380501112233"},
	}

	result := NewTemplateCompiler(widgetProduct(), form).Compile("{order_form}")

	assert.Contains(t, result.HTML, `id="`+rendering.InputFullNameID+`"`)
	assert.Contains(t, result.HTML, `value="Ada Lovelace"`)
	assert.Contains(t, result.HTML, `id="`+rendering.SubmitButtonID+`"`)

	inputs := result.FindSlots(rendering.SlotContactInput)
	require.Len(t, inputs, 4)
	assert.Equal(t, rendering.FieldFullName, inputs[0].Field)
	assert.Equal(t, rendering.FieldAddress, inputs[3].Field)

	require.Len(t, result.FindSlots(rendering.SlotSubmitButton), 1)
}

func TestCompileOrderFormShowsFormError(t *testing.T) {
	form := &rendering.FormState{Error: "phone is required"}

	result := NewTemplateCompiler(widgetProduct(), form).Compile("{order_form}")

	assert.Contains(t, result.HTML, "lp-form-error")
	assert.Contains(t, result.HTML, "phone is required")
}

func TestCompileResetsSlotsBetweenCalls(t *testing.T) {
	compiler := NewTemplateCompiler(widgetProduct(), nil)

	first := compiler.Compile("{order_form}")
	second := compiler.Compile("{order_form}")

	assert.Len(t, second.Slots, len(first.Slots))
}

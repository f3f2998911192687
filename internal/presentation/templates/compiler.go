package templates

import (
	"fmt"
	"html"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"

	elements "github.com/pagemint/pagemint-go/internal/presentation/templates/elements"
)

// Placeholder tag vocabulary. Tags are case-sensitive and brace-delimited;
// any other {...} token passes through the compiler untouched.
const (
	TagProductName         = "{product_name}"
	TagProductPrice        = "{product_price}"
	TagProductRegularPrice = "{product_regular_price}"
	TagProductDescription  = "{product_description}"
	TagProductSKU          = "{product_sku}"
	TagImageCarousel       = "{product_image_carousel}"
	TagAttributesSelector  = "{attributes_selector}"
	TagOrderForm           = "{order_form}"
)

// maxIndexedImages bounds the {product_image_N} tag family (0..3).
const maxIndexedImages = 4

// TemplateCompiler turns code-mode HTML with placeholder tags into a fully
// substituted page. Compilation is pure string replacement against an
// immutable product and form snapshot; it never evaluates script content
// and never fails on unknown tags.
type TemplateCompiler struct {
	product *content.Product
	form    *rendering.FormState
	slots   []rendering.Slot
}

// NewTemplateCompiler creates a compiler for one product and form snapshot.
// A nil form is replaced with an empty one.
func NewTemplateCompiler(product *content.Product, form *rendering.FormState) *TemplateCompiler {
	if form == nil {
		form = &rendering.FormState{}
	}
	return &TemplateCompiler{product: product, form: form}
}

// Compile substitutes every recognized placeholder tag in htmlCode and
// returns the result together with the slot markers for the generated
// interactive blocks.
func (tc *TemplateCompiler) Compile(htmlCode string) *rendering.CompiledPage {
	tc.slots = nil
	compiled := htmlCode

	// Generated blocks first: their markup may not itself contain
	// placeholder tags, but substituting them before the scalars keeps a
	// single pass per tag regardless.
	if strings.Contains(compiled, TagImageCarousel) {
		compiled = strings.ReplaceAll(compiled, TagImageCarousel, tc.renderCarousel())
	}
	if strings.Contains(compiled, TagAttributesSelector) {
		compiled = strings.ReplaceAll(compiled, TagAttributesSelector, tc.renderAttributesSelector())
	}
	if strings.Contains(compiled, TagOrderForm) {
		compiled = strings.ReplaceAll(compiled, TagOrderForm, tc.renderOrderForm())
	}

	values := tc.scalarValues()
	for _, tag := range scalarTagOrder() {
		compiled = strings.ReplaceAll(compiled, tag, values[tag])
	}

	return &rendering.CompiledPage{HTML: compiled, Slots: tc.slots}
}

// scalarTagOrder fixes the substitution order of the scalar tags so a
// compile is deterministic even when a substituted value happens to contain
// brace-delimited text of its own.
func scalarTagOrder() []string {
	tags := []string{
		TagProductName,
		TagProductPrice,
		TagProductRegularPrice,
		TagProductDescription,
		TagProductSKU,
	}
	for i := 0; i < maxIndexedImages; i++ {
		tags = append(tags, fmt.Sprintf("{product_image_%d}", i))
	}
	return tags
}

// scalarValues resolves the direct-substitution tags. Absent values
// substitute as empty strings, never as a literal nil marker.
func (tc *TemplateCompiler) scalarValues() map[string]string {
	values := map[string]string{
		TagProductName:         "",
		TagProductPrice:        "",
		TagProductRegularPrice: "",
		TagProductDescription:  "",
		TagProductSKU:          "",
	}
	for i := 0; i < maxIndexedImages; i++ {
		values[fmt.Sprintf("{product_image_%d}", i)] = ""
	}

	product := tc.product
	if product == nil {
		return values
	}

	values[TagProductName] = html.EscapeString(product.Name)
	values[TagProductPrice] = html.EscapeString(rendering.FormatPrice(product.Price, product.Currency))
	if product.RegularPrice != nil {
		values[TagProductRegularPrice] = html.EscapeString(rendering.FormatPrice(*product.RegularPrice, product.Currency))
	}
	values[TagProductDescription] = rendering.DescriptionHTML(product.Description)
	if product.SKU != nil && product.ShowSKU {
		values[TagProductSKU] = html.EscapeString(*product.SKU)
	}
	for i := 0; i < maxIndexedImages && i < len(product.Images); i++ {
		values[fmt.Sprintf("{product_image_%d}", i)] = html.EscapeString(product.Images[i])
	}

	return values
}

// renderCarousel expands {product_image_carousel} into a self-contained
// gallery block: main display showing the first media item plus
// previous/next controls and a thumbnail strip when more than one item
// exists.
func (tc *TemplateCompiler) renderCarousel() string {
	media := rendering.BuildMediaList(tc.product)

	var out strings.Builder
	out.WriteString(fmt.Sprintf(`<div id="%s" class="lp-gallery" data-media-count="%d">`,
		rendering.GalleryID, len(media)))

	first, ok := rendering.CurrentMedia(media, 0)
	out.WriteString(fmt.Sprintf(`<div id="%s" class="lp-gallery-main">`, rendering.GalleryMainID))
	if ok {
		out.WriteString(elements.RenderMediaItem(first))
		tc.slots = append(tc.slots, rendering.Slot{
			Kind:      rendering.SlotGalleryMain,
			DOMID:     rendering.GalleryMainID,
			MediaKind: first.Kind,
			Source:    first.Source,
		})
	}
	out.WriteString(`</div>`)

	if len(media) > 1 {
		out.WriteString(fmt.Sprintf(`<button type="button" id="%s" aria-label="Previous">&lsaquo;</button>`,
			rendering.GalleryPrevID))
		out.WriteString(fmt.Sprintf(`<button type="button" id="%s" aria-label="Next">&rsaquo;</button>`,
			rendering.GalleryNextID))
		out.WriteString(elements.RenderThumbnailStrip(media, 0))
		tc.slots = append(tc.slots,
			rendering.Slot{Kind: rendering.SlotGalleryNav, DOMID: rendering.GalleryPrevID},
			rendering.Slot{Kind: rendering.SlotGalleryNav, DOMID: rendering.GalleryNextID})
	}
	for i, item := range media {
		tc.slots = append(tc.slots, rendering.Slot{
			Kind:      rendering.SlotGalleryThumb,
			Index:     i,
			MediaKind: item.Kind,
			Source:    item.Source,
		})
	}

	out.WriteString(`</div>`)
	return out.String()
}

// renderAttributesSelector expands {attributes_selector} into one labeled
// radio group per product attribute, with the current selection checked.
func (tc *TemplateCompiler) renderAttributesSelector() string {
	if tc.product == nil || len(tc.product.Attributes) == 0 {
		return ""
	}

	var out strings.Builder
	out.WriteString(`<div class="lp-attributes">`)
	for _, attribute := range tc.product.Attributes {
		out.WriteString(elements.RenderAttributeGroup(attribute, tc.form.SelectedOption(attribute.Name)))
		for _, option := range attribute.Options {
			tc.slots = append(tc.slots, rendering.Slot{
				Kind:  rendering.SlotAttributeOption,
				Name:  attribute.Name,
				Value: option,
			})
		}
	}
	out.WriteString(`</div>`)
	return out.String()
}

// renderOrderForm expands {order_form} into the fixed four-field contact
// form plus submit button, each element carrying its hydration-recognized
// identifier.
func (tc *TemplateCompiler) renderOrderForm() string {
	form := tc.form

	var out strings.Builder
	out.WriteString(`<form class="lp-order-form">`)
	if form.Error != "" {
		out.WriteString(`<div class="lp-form-error" role="alert">`)
		out.WriteString(html.EscapeString(form.Error))
		out.WriteString(`</div>`)
	}

	inputs := []struct {
		domID string
		label string
		field string
		value string
	}{
		{rendering.InputFullNameID, "Full name", rendering.FieldFullName, form.Fields.FullName},
		{rendering.InputPhoneID, "Phone", rendering.FieldPhone, form.Fields.Phone},
		{rendering.InputCityID, "City", rendering.FieldCity, form.Fields.City},
		{rendering.InputAddressID, "Address", rendering.FieldAddress, form.Fields.Address},
	}
	for _, input := range inputs {
		out.WriteString(elements.RenderContactInput(input.domID, input.label, input.value))
		tc.slots = append(tc.slots, rendering.Slot{
			Kind:  rendering.SlotContactInput,
			DOMID: input.domID,
			Field: input.field,
		})
	}

	out.WriteString(fmt.Sprintf(`<button type="submit" id="%s">Place order</button>`,
		rendering.SubmitButtonID))
	tc.slots = append(tc.slots, rendering.Slot{
		Kind:  rendering.SlotSubmitButton,
		DOMID: rendering.SubmitButtonID,
	})

	out.WriteString(`</form>`)
	return out.String()
}

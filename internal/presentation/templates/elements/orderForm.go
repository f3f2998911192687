package elements

import (
	"fmt"
	"html"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// OrderFormRenderer handles order form elements. The form performs no
// validation and no network I/O; submit delegates to the host's handler
// and the only error surface is the form-level error string.
type OrderFormRenderer struct {
	ctx *rendering.RenderContext
}

// NewOrderFormRenderer creates a new order form renderer
func NewOrderFormRenderer(ctx *rendering.RenderContext) *OrderFormRenderer {
	return &OrderFormRenderer{ctx: ctx}
}

func (ofr *OrderFormRenderer) Render(nodeID string) string {
	node := ofr.ctx.Node(nodeID)
	if node == nil {
		return RenderEmptyNode()
	}

	form := ofr.ctx.Form
	var attributes []content.ProductAttribute
	if ofr.ctx.Product != nil {
		attributes = ofr.ctx.Product.Attributes
	}

	buttonLabel := node.Props["buttonLabel"]
	if buttonLabel == "" {
		buttonLabel = "Place order"
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	out.WriteString(`<form class="lp-order-form">`)

	if form.Error != "" {
		out.WriteString(`<div class="lp-form-error" role="alert">`)
		out.WriteString(html.EscapeString(form.Error))
		out.WriteString(`</div>`)
	}

	for _, attribute := range attributes {
		out.WriteString(RenderAttributeGroup(attribute, form.SelectedOption(attribute.Name)))
	}

	out.WriteString(RenderContactInput(rendering.InputFullNameID, "Full name", form.Fields.FullName))
	out.WriteString(RenderContactInput(rendering.InputPhoneID, "Phone", form.Fields.Phone))
	out.WriteString(RenderContactInput(rendering.InputCityID, "City", form.Fields.City))
	out.WriteString(RenderContactInput(rendering.InputAddressID, "Address", form.Fields.Address))

	out.WriteString(fmt.Sprintf(`<button type="submit" id="%s">%s</button>`,
		rendering.SubmitButtonID, html.EscapeString(buttonLabel)))

	out.WriteString(`</form>`)
	out.WriteString(`</div>`)
	return out.String()
}

// RenderContactInput renders one required text input of the contact block,
// carrying its hydration-recognized identifier and current value.
func RenderContactInput(inputID, label, value string) string {
	return fmt.Sprintf(
		`<label class="lp-field">%s<input type="text" id="%s" value="%s" required /></label>`,
		html.EscapeString(label), inputID, html.EscapeString(value))
}

// RenderAttributeGroup renders one labeled radio group for a product
// attribute; the option matching the current selection is checked and the
// surrounding label marked selected.
func RenderAttributeGroup(attribute content.ProductAttribute, selected string) string {
	var out strings.Builder
	out.WriteString(`<fieldset class="lp-attr-group"><legend>`)
	out.WriteString(html.EscapeString(attribute.Name))
	out.WriteString(`</legend>`)

	for _, option := range attribute.Options {
		checked := ""
		labelClass := "lp-attr-option"
		if option == selected {
			checked = " checked"
			labelClass += " selected"
		}
		out.WriteString(fmt.Sprintf(
			`<label class="%s"><input type="radio" class="%s" name="%s%s" value="%s"%s />%s</label>`,
			labelClass, rendering.AttributeInputClass,
			rendering.AttributeNamePrefix, html.EscapeString(attribute.Name),
			html.EscapeString(option), checked, html.EscapeString(option)))
	}

	out.WriteString(`</fieldset>`)
	return out.String()
}

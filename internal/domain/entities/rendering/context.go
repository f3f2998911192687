// Package rendering provides domain entities for HTML rendering operations
package rendering

import (
	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
)

// ContactFields is the customer input bundle of an order form.
type ContactFields struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Address  string `json:"address"`
}

// SubmitEvent is handed to the host's submit handler. The core performs no
// validation and no network I/O on submit; the snapshot carries whatever
// the form held at the moment of the gesture.
type SubmitEvent struct {
	Fields     ContactFields
	Attributes map[string]string
}

// FormState is the transient, host-owned bundle of customer input,
// attribute selections and the callbacks every renderer threads through.
// All callbacks may be nil; invocations are guarded so a partially wired
// host degrades silently.
type FormState struct {
	Fields     ContactFields
	Selected   map[string]string
	MediaIndex int
	Error      string

	SetFields         func(ContactFields)
	OnAttributeChange func(name, value string)
	OnSubmit          func(SubmitEvent)
	OnPrevMedia       func()
	OnNextMedia       func()
}

// SelectedOption returns the currently selected option for an attribute
// name, or "" when nothing is selected.
func (f *FormState) SelectedOption(name string) string {
	if f == nil || f.Selected == nil {
		return ""
	}
	return f.Selected[name]
}

// RenderContext provides the immutable snapshot a single render call works
// from: the page document, the product record it is bound to, and the
// host's form state.
type RenderContext struct {
	Tree    tree.Tree
	Product *content.Product
	Form    *FormState
}

// NewRenderContext assembles a render context. A nil form is replaced with
// an empty one so renderers never nil-check the bundle itself.
func NewRenderContext(t tree.Tree, product *content.Product, form *FormState) *RenderContext {
	if form == nil {
		form = &FormState{}
	}
	return &RenderContext{Tree: t, Product: product, Form: form}
}

// Node returns the render data for a node id, or nil when absent.
func (ctx *RenderContext) Node(id string) *tree.Node {
	return ctx.Tree.Find(id)
}

// ChildNodeIDs returns the ordered child ids for a container node.
func (ctx *RenderContext) ChildNodeIDs(id string) []string {
	return ctx.Tree.ChildIDs(id)
}

// Package tree provides the element arena for landing page documents
package tree

import "github.com/oklog/ulid/v2"

// ElementKind identifies one of the closed set of page element variants.
type ElementKind string

const (
	// Structural variants
	KindSection   ElementKind = "section"
	KindContainer ElementKind = "container"

	// Static content variants
	KindHeading   ElementKind = "heading"
	KindText      ElementKind = "text"
	KindImage     ElementKind = "image"
	KindButton    ElementKind = "button"
	KindHTMLBlock ElementKind = "html-block"
	KindSeparator ElementKind = "separator"

	// Product-bound variants
	KindProductTitle       ElementKind = "product-title"
	KindProductPrice       ElementKind = "product-price"
	KindProductDescription ElementKind = "product-description"
	KindProductGallery     ElementKind = "product-gallery"
	KindOrderForm          ElementKind = "order-form"
	KindTrustBadges        ElementKind = "trust-badges"
	KindFeatureItem        ElementKind = "feature-item"
	KindProductReviews     ElementKind = "product-reviews"
)

// AllKinds lists every element variant in display order.
var AllKinds = []ElementKind{
	KindSection, KindContainer,
	KindHeading, KindText, KindImage, KindButton, KindHTMLBlock, KindSeparator,
	KindProductTitle, KindProductPrice, KindProductDescription, KindProductGallery,
	KindOrderForm, KindTrustBadges, KindFeatureItem, KindProductReviews,
}

// IsContainer reports whether elements of this kind carry children.
func (k ElementKind) IsContainer() bool {
	return k == KindSection || k == KindContainer
}

// Known reports whether k is a member of the closed variant set.
func (k ElementKind) Known() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// PageElement is the nested wire form of a page node, as persisted in a
// landing page's elements column. Children is nil for non-container kinds
// and non-nil (possibly empty) for container kinds.
type PageElement struct {
	ID       string            `json:"id"`
	Kind     ElementKind       `json:"type"`
	Content  string            `json:"content,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Props    map[string]string `json:"props,omitempty"`
	Children []PageElement     `json:"children,omitempty"`
}

// NewDefaultElement constructs a fresh element of the given kind with a new
// ULID and that kind's default content, style and props. The switch is
// exhaustive over the closed variant set; an unknown kind yields a bare
// element carrying only its id and kind.
func NewDefaultElement(kind ElementKind) PageElement {
	el := PageElement{
		ID:    ulid.Make().String(),
		Kind:  kind,
		Style: map[string]string{},
		Props: map[string]string{},
	}

	switch kind {
	case KindSection:
		el.Style["padding"] = "48px 24px"
		el.Style["background"] = "#ffffff"
		el.Children = []PageElement{}
	case KindContainer:
		el.Style["padding"] = "16px"
		el.Style["maxWidth"] = "960px"
		el.Children = []PageElement{}
	case KindHeading:
		el.Content = "Your headline here"
		el.Style["fontSize"] = "32px"
		el.Style["fontWeight"] = "bold"
		el.Style["textAlign"] = "center"
		el.Props["level"] = "2"
	case KindText:
		el.Content = "Write something persuasive about your product."
		el.Style["fontSize"] = "16px"
		el.Style["textAlign"] = "left"
	case KindImage:
		el.Content = "https://placehold.co/600x400"
		el.Style["width"] = "100%"
		el.Props["alt"] = ""
	case KindButton:
		el.Content = "Order now"
		el.Style["background"] = "#16a34a"
		el.Style["color"] = "#ffffff"
		el.Style["padding"] = "12px 32px"
		el.Style["borderRadius"] = "8px"
		el.Props["href"] = "#order"
	case KindHTMLBlock:
		el.Content = "<div>Custom HTML</div>"
	case KindSeparator:
		el.Style["margin"] = "24px 0"
		el.Style["borderColor"] = "#e5e7eb"
	case KindProductTitle:
		el.Style["fontSize"] = "28px"
		el.Style["fontWeight"] = "bold"
	case KindProductPrice:
		el.Style["fontSize"] = "24px"
		el.Style["color"] = "#16a34a"
	case KindProductDescription:
		el.Style["fontSize"] = "16px"
	case KindProductGallery:
		el.Style["width"] = "100%"
	case KindOrderForm:
		el.Style["padding"] = "24px"
		el.Style["background"] = "#f9fafb"
		el.Style["borderRadius"] = "12px"
		el.Props["buttonLabel"] = "Place order"
	case KindTrustBadges:
		el.Content = "Fast delivery|Secure checkout|Easy returns"
	case KindFeatureItem:
		el.Content = "Describe one benefit of your product."
		el.Props["icon"] = "check"
	case KindProductReviews:
		el.Style["background"] = "#ffffff"
	}

	return el
}

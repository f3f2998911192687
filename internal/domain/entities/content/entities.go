// Package content defines the application's core content-related domain entities.
package content

import (
	"time"

	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
)

// Mode selects which authoring representation governs rendering for a
// landing page. Exactly one of Elements (visual, drag-drop) or HTMLCode
// (code) is authoritative per mode; the other may still be stored.
type Mode string

const (
	ModeVisual   Mode = "visual"
	ModeCode     Mode = "code"
	ModeDragDrop Mode = "drag-drop"
)

// LayoutEntry holds free-positioning metadata for a single element, keyed
// by element id in LandingPage.Layout. Entries are sparse and only
// meaningful for drag-drop mode; the renderers do not interpret them.
type LayoutEntry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	ZIndex int     `json:"zIndex,omitempty"`
}

type LandingPage struct {
	ID       string                 `json:"id"`
	OwnerID  string                 `json:"ownerId"`
	Name     string                 `json:"name"`
	Mode     Mode                   `json:"mode"`
	Elements []tree.PageElement     `json:"elements,omitempty"`
	Layout   map[string]LayoutEntry `json:"layout,omitempty"`
	HTMLCode string                 `json:"htmlCode,omitempty"`
	Created  time.Time              `json:"created"`
	Changed  *time.Time             `json:"changed,omitempty"`
}

type Product struct {
	ID           string             `json:"id"`
	OwnerID      string             `json:"ownerId"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Price        float64            `json:"price"`
	RegularPrice *float64           `json:"regularPrice,omitempty"`
	Currency     string             `json:"currency"`
	SKU          *string            `json:"sku,omitempty"`
	ShowSKU      bool               `json:"showSku"`
	Images       []string           `json:"images"`
	Videos       []string           `json:"videos,omitempty"`
	Attributes   []ProductAttribute `json:"attributes,omitempty"`
	Reviews      []ProductReview    `json:"reviews,omitempty"`
	ShowReviews  bool               `json:"showReviews"`
	Created      time.Time          `json:"created"`
}

type ProductAttribute struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type ProductReview struct {
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type Order struct {
	ID         string            `json:"id"`
	ProductID  string            `json:"productId"`
	PageID     *string           `json:"pageId,omitempty"`
	FullName   string            `json:"fullName"`
	Phone      string            `json:"phone"`
	City       string            `json:"city"`
	Address    string            `json:"address"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Status     string            `json:"status"`
	Created    time.Time         `json:"created"`
}

type SellerUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Created      time.Time `json:"created"`
}

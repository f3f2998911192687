package rendering

// Hydration DOM contract. The compiler emits these identifiers and the
// hydration layer locates its bindings through them; the two sides must
// change together.
const (
	GalleryID           = "lp-gallery"
	GalleryMainID       = "lp-gallery-main"
	GalleryThumbClass   = "lp-gallery-thumb"
	GalleryPrevID       = "lp-gallery-prev"
	GalleryNextID       = "lp-gallery-next"
	InputFullNameID     = "lp-input-full-name"
	InputPhoneID        = "lp-input-phone"
	InputCityID         = "lp-input-city"
	InputAddressID      = "lp-input-address"
	SubmitButtonID      = "lp-submit-order"
	AttributeInputClass = "lp-attr-input"
	AttributeNamePrefix = "lp-attr-"
)

// Contact field keys carried on contact-input slots.
const (
	FieldFullName = "fullName"
	FieldPhone    = "phone"
	FieldCity     = "city"
	FieldAddress  = "address"
)

// SlotKind classifies the interactive elements a compiled page exposes.
type SlotKind string

const (
	SlotGalleryMain     SlotKind = "gallery-main"
	SlotGalleryThumb    SlotKind = "gallery-thumb"
	SlotGalleryNav      SlotKind = "gallery-nav"
	SlotContactInput    SlotKind = "contact-input"
	SlotSubmitButton    SlotKind = "submit-button"
	SlotAttributeOption SlotKind = "attribute-option"
)

// Slot is a typed marker for one interactive element the compiler emitted.
// The hydration layer binds by slot identity instead of scraping the markup
// with selectors; the DOM identifiers above are still emitted for the
// benefit of the mounted page itself.
type Slot struct {
	Kind  SlotKind `json:"kind"`
	DOMID string   `json:"domId,omitempty"`

	// Contact input slots
	Field string `json:"field,omitempty"`

	// Attribute option slots
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`

	// Gallery slots
	Index     int       `json:"index,omitempty"`
	MediaKind MediaKind `json:"mediaKind,omitempty"`
	Source    string    `json:"source,omitempty"`
}

// CompiledPage is the output of the code-mode template compiler: the fully
// substituted HTML plus the slot markers hydration binds against.
type CompiledPage struct {
	HTML  string `json:"html"`
	Slots []Slot `json:"slots,omitempty"`
}

// FindSlots returns every slot of the given kind in emission order.
func (p *CompiledPage) FindSlots(kind SlotKind) []Slot {
	var matched []Slot
	for _, slot := range p.Slots {
		if slot.Kind == kind {
			matched = append(matched, slot)
		}
	}
	return matched
}

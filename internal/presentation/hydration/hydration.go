// Package hydration binds compiled landing pages to live application state.
//
// After a compiled page is mounted, the binder attaches one handler per
// slot the compiler emitted and routes the page's DOM events to the host's
// FormState callbacks. Binding is by slot identity, not by selector
// scraping; the DOM identifiers of the compiler contract are only the
// event routing keys. Every binding step independently no-ops when its
// slot is absent, and rebinding tears down all previous handlers first so
// repeated renders of the same mounted node never accumulate listeners.
package hydration

import (
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// EventType mirrors the DOM event kinds the binder listens for.
type EventType string

const (
	EventClick  EventType = "click"
	EventInput  EventType = "input"
	EventChange EventType = "change"
)

// Event is one user gesture delivered from the mounted page. Thumbnail
// clicks and attribute changes arrive through delegated listeners, so
// their TargetID is the contract marker class rather than an element id.
type Event struct {
	Type     EventType
	TargetID string
	Name     string
	Value    string
	Index    int
}

// Binder holds the live bindings for one mounted compiled page.
type Binder struct {
	form *rendering.FormState

	thumbs      []rendering.Slot
	inputs      map[string]rendering.Slot
	navs        map[string]bool
	submitBound bool
	radioGroups map[string][]string

	activeIndex int
	mainMedia   rendering.MediaItem
	hasMain     bool
	inputValues map[string]string
	selected    map[string]string
}

// Bind attaches handlers for every slot of the compiled page and pushes
// the current FormState values into the bound inputs. A nil page or form
// yields a binder with no live bindings; dispatching into it is harmless.
func Bind(page *rendering.CompiledPage, form *rendering.FormState) *Binder {
	b := &Binder{}
	b.Rebind(page, form)
	return b
}

// Rebind tears down every previous binding and attaches fresh ones. The
// effect is idempotent: rebinding against the same page and state leaves
// exactly one live binding set.
func (b *Binder) Rebind(page *rendering.CompiledPage, form *rendering.FormState) {
	b.Detach()
	b.form = form
	if page == nil {
		return
	}

	for _, slot := range page.Slots {
		switch slot.Kind {
		case rendering.SlotGalleryMain:
			b.mainMedia = rendering.MediaItem{Kind: slot.MediaKind, Source: slot.Source}
			b.hasMain = true
		case rendering.SlotGalleryThumb:
			b.thumbs = append(b.thumbs, slot)
		case rendering.SlotGalleryNav:
			b.navs[slot.DOMID] = true
		case rendering.SlotContactInput:
			b.inputs[slot.DOMID] = slot
		case rendering.SlotSubmitButton:
			b.submitBound = true
		case rendering.SlotAttributeOption:
			b.radioGroups[slot.Name] = append(b.radioGroups[slot.Name], slot.Value)
		}
	}

	// Initial mount pushes current FormState values into the inputs.
	if form != nil {
		for domID, slot := range b.inputs {
			b.inputValues[domID] = fieldValue(form.Fields, slot.Field)
		}
		for name := range b.radioGroups {
			if value := form.SelectedOption(name); value != "" {
				b.selected[name] = value
			}
		}
	}
}

// Detach removes every binding and resets the binder-local display state.
func (b *Binder) Detach() {
	b.form = nil
	b.thumbs = nil
	b.inputs = map[string]rendering.Slot{}
	b.navs = map[string]bool{}
	b.submitBound = false
	b.radioGroups = map[string][]string{}
	b.activeIndex = 0
	b.mainMedia = rendering.MediaItem{}
	b.hasMain = false
	b.inputValues = map[string]string{}
	b.selected = map[string]string{}
}

// Dispatch routes one event to its binding. It reports whether any binding
// handled the event; an event with no bound target is silently ignored.
func (b *Binder) Dispatch(ev Event) bool {
	switch ev.Type {
	case EventClick:
		if ev.TargetID == rendering.SubmitButtonID {
			return b.clickSubmit()
		}
		if ev.TargetID == rendering.GalleryThumbClass {
			return b.clickThumb(ev.Index)
		}
		if ev.TargetID == rendering.GalleryPrevID || ev.TargetID == rendering.GalleryNextID {
			return b.clickNav(ev.TargetID)
		}
	case EventInput:
		return b.input(ev.TargetID, ev.Value)
	case EventChange:
		if ev.TargetID == rendering.AttributeInputClass {
			return b.changeAttribute(ev.Name, ev.Value)
		}
	}
	return false
}

// clickThumb swaps the main display to the clicked thumbnail's recorded
// kind and source and marks it active. Purely binder-local state; the
// FormState is not involved.
func (b *Binder) clickThumb(index int) bool {
	for _, slot := range b.thumbs {
		if slot.Index == index {
			b.activeIndex = index
			b.mainMedia = rendering.MediaItem{Kind: slot.MediaKind, Source: slot.Source}
			b.hasMain = true
			return true
		}
	}
	return false
}

// clickNav delegates the gallery's previous/next controls to the host's
// media handlers. The host owns the media index and re-renders; the
// binder keeps no position of its own for these controls.
func (b *Binder) clickNav(domID string) bool {
	if !b.navs[domID] {
		return false
	}
	if b.form != nil {
		switch domID {
		case rendering.GalleryPrevID:
			if b.form.OnPrevMedia != nil {
				b.form.OnPrevMedia()
			}
		case rendering.GalleryNextID:
			if b.form.OnNextMedia != nil {
				b.form.OnNextMedia()
			}
		}
	}
	return true
}

// input pushes a contact input's current value set back into the host's
// FormState through its setter.
func (b *Binder) input(domID, value string) bool {
	if _, ok := b.inputs[domID]; !ok {
		return false
	}
	b.inputValues[domID] = value

	if b.form != nil && b.form.SetFields != nil {
		b.form.SetFields(b.currentFields())
	}
	return true
}

// clickSubmit intercepts the submit gesture (the default action never
// fires) and delegates to the host's submit handler with a snapshot.
func (b *Binder) clickSubmit() bool {
	if !b.submitBound {
		return false
	}
	if b.form != nil && b.form.OnSubmit != nil {
		b.form.OnSubmit(rendering.SubmitEvent{
			Fields:     b.currentFields(),
			Attributes: b.selectedSnapshot(),
		})
	}
	return true
}

// changeAttribute handles the delegated radio change listener: it calls
// the host's attribute-change handler and refreshes the selected styling
// of every radio sharing the group name.
func (b *Binder) changeAttribute(name, value string) bool {
	attrName := strings.TrimPrefix(name, rendering.AttributeNamePrefix)
	options, ok := b.radioGroups[attrName]
	if !ok {
		return false
	}

	valid := false
	for _, option := range options {
		if option == value {
			valid = true
			break
		}
	}
	if !valid {
		return false
	}

	b.selected[attrName] = value
	if b.form != nil && b.form.OnAttributeChange != nil {
		b.form.OnAttributeChange(attrName, value)
	}
	return true
}

// ActiveIndex returns the index of the visually active thumbnail.
func (b *Binder) ActiveIndex() int {
	return b.activeIndex
}

// MainMedia returns the media item the main display currently shows.
func (b *Binder) MainMedia() (rendering.MediaItem, bool) {
	return b.mainMedia, b.hasMain
}

// InputValue returns the current value of a bound contact input.
func (b *Binder) InputValue(domID string) string {
	return b.inputValues[domID]
}

// SelectedValue returns the visually selected option of an attribute group.
func (b *Binder) SelectedValue(attrName string) string {
	return b.selected[attrName]
}

// BindingCount reports how many live bindings the binder holds; rebinding
// must never grow this for the same page.
func (b *Binder) BindingCount() int {
	count := len(b.thumbs) + len(b.inputs) + len(b.navs) + len(b.radioGroups)
	if b.submitBound {
		count++
	}
	if b.hasMain {
		count++
	}
	return count
}

func (b *Binder) currentFields() rendering.ContactFields {
	return rendering.ContactFields{
		FullName: b.inputValues[rendering.InputFullNameID],
		Phone:    b.inputValues[rendering.InputPhoneID],
		City:     b.inputValues[rendering.InputCityID],
		Address:  b.inputValues[rendering.InputAddressID],
	}
}

func (b *Binder) selectedSnapshot() map[string]string {
	snapshot := make(map[string]string, len(b.selected))
	for name, value := range b.selected {
		snapshot[name] = value
	}
	return snapshot
}

func fieldValue(fields rendering.ContactFields, field string) string {
	switch field {
	case rendering.FieldFullName:
		return fields.FullName
	case rendering.FieldPhone:
		return fields.Phone
	case rendering.FieldCity:
		return fields.City
	case rendering.FieldAddress:
		return fields.Address
	}
	return ""
}

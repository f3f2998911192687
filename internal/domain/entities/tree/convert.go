package tree

// FromElements builds an arena document from the nested wire form.
func FromElements(elements []PageElement) Tree {
	t := NewTree()
	for _, el := range elements {
		t.indexSubtree(el, "")
		t.Roots = append(t.Roots, el.ID)
	}
	return t
}

// ToElements converts the arena back into the nested wire form, preserving
// sibling order at every level.
func (t Tree) ToElements() []PageElement {
	elements := make([]PageElement, 0, len(t.Roots))
	for _, rootID := range t.Roots {
		if el, ok := t.toElement(rootID); ok {
			elements = append(elements, el)
		}
	}
	return elements
}

func (t Tree) toElement(id string) (PageElement, bool) {
	node, ok := t.Nodes[id]
	if !ok {
		return PageElement{}, false
	}

	el := PageElement{
		ID:      node.ID,
		Kind:    node.Kind,
		Content: node.Content,
		Style:   node.Style,
		Props:   node.Props,
	}
	if node.Kind.IsContainer() {
		el.Children = []PageElement{}
		for _, childID := range t.Children[id] {
			if child, ok := t.toElement(childID); ok {
				el.Children = append(el.Children, child)
			}
		}
	}
	return el, true
}

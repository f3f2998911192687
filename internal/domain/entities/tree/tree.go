package tree

// Node is one entry of the arena: a PageElement with its children held as
// id references instead of nested values.
type Node struct {
	ID      string            `json:"id"`
	Kind    ElementKind       `json:"kind"`
	Content string            `json:"content,omitempty"`
	Style   map[string]string `json:"style,omitempty"`
	Props   map[string]string `json:"props,omitempty"`
}

// Tree is an arena-indexed page document: a flat node table keyed by id,
// ordered child id lists per container, and an ordered root id list. Node
// ids are unique across the whole document, so lookup is a map access
// rather than a depth-first walk.
//
// Every operation is total: an id that does not resolve leaves the tree
// unchanged and never raises an error. Operations return a new Tree and do
// not mutate the receiver, so callers may hold references to earlier
// revisions.
type Tree struct {
	Roots    []string
	Nodes    map[string]Node
	Children map[string][]string
	Parents  map[string]string
}

// NewTree returns an empty document.
func NewTree() Tree {
	return Tree{
		Roots:    []string{},
		Nodes:    map[string]Node{},
		Children: map[string][]string{},
		Parents:  map[string]string{},
	}
}

// Position selects where a moved node lands relative to its target.
type Position string

const (
	PositionBefore Position = "before"
	PositionAfter  Position = "after"
	PositionInside Position = "inside"
)

// Find returns the node with the given id, or nil when it is not part of
// the document.
func (t Tree) Find(id string) *Node {
	if node, ok := t.Nodes[id]; ok {
		return &node
	}
	return nil
}

// Len returns the number of nodes in the document.
func (t Tree) Len() int {
	return len(t.Nodes)
}

// ChildIDs returns the ordered child ids of a container node. Non-container
// and unknown ids yield an empty list.
func (t Tree) ChildIDs(id string) []string {
	children, ok := t.Children[id]
	if !ok {
		return []string{}
	}
	return children
}

// Append adds an element subtree at root level.
func (t Tree) Append(el PageElement) Tree {
	next := t.clone()
	next.indexSubtree(el, "")
	next.Roots = append(next.Roots, el.ID)
	return next
}

// InsertInto appends an element subtree to the children of the node with
// the given container id. The tree is returned unchanged when the id does
// not resolve or resolves to a non-container node.
func (t Tree) InsertInto(containerID string, el PageElement) Tree {
	container, ok := t.Nodes[containerID]
	if !ok || !container.Kind.IsContainer() {
		return t
	}

	next := t.clone()
	next.indexSubtree(el, containerID)
	next.Children[containerID] = append(next.Children[containerID], el.ID)
	return next
}

// Patch carries the fields of an Update. Nil fields are left untouched;
// Style and Props entries are shallow-merged over the existing maps.
type Patch struct {
	Content *string
	Style   map[string]string
	Props   map[string]string
}

// Update shallow-merges a patch into the node with the given id, wherever
// it sits in the document. An unresolved id is a no-op.
func (t Tree) Update(id string, patch Patch) Tree {
	node, ok := t.Nodes[id]
	if !ok {
		return t
	}

	next := t.clone()
	if patch.Content != nil {
		node.Content = *patch.Content
	}
	if len(patch.Style) > 0 {
		node.Style = mergeMaps(node.Style, patch.Style)
	}
	if len(patch.Props) > 0 {
		node.Props = mergeMaps(node.Props, patch.Props)
	}
	next.Nodes[id] = node
	return next
}

// Remove deletes the node with the given id and its entire subtree from
// wherever it is nested, including root level. An unresolved id is a no-op.
func (t Tree) Remove(id string) Tree {
	if _, ok := t.Nodes[id]; !ok {
		return t
	}

	next := t.clone()
	next.detach(id)
	next.deleteSubtree(id)
	return next
}

// Move detaches the node at dragID and re-inserts it relative to targetID.
// PositionInside appends it to the target container's children.
// PositionBefore and PositionAfter splice it into the root list adjacent to
// the target; reordering is supported for top-level siblings only. The move
// is a no-op when dragID does not resolve, when the target is invalid for
// the requested position, or when the target sits inside the dragged
// subtree.
func (t Tree) Move(dragID, targetID string, position Position) Tree {
	if _, ok := t.Nodes[dragID]; !ok {
		return t
	}
	if dragID == targetID {
		return t
	}
	if t.contains(dragID, targetID) {
		return t
	}

	switch position {
	case PositionInside:
		target, ok := t.Nodes[targetID]
		if !ok || !target.Kind.IsContainer() {
			return t
		}
		next := t.clone()
		next.detach(dragID)
		next.Parents[dragID] = targetID
		next.Children[targetID] = append(next.Children[targetID], dragID)
		return next

	case PositionBefore, PositionAfter:
		index := indexOf(t.Roots, targetID)
		if index == -1 {
			return t
		}
		next := t.clone()
		next.detach(dragID)
		// Recompute: detaching may have shifted the root list.
		index = indexOf(next.Roots, targetID)
		if position == PositionAfter {
			index++
		}
		next.Roots = spliceAt(next.Roots, index, dragID)
		return next
	}

	return t
}

// contains reports whether descendantID sits within the subtree rooted at
// rootID (inclusive).
func (t Tree) contains(rootID, descendantID string) bool {
	if rootID == descendantID {
		return true
	}
	for _, childID := range t.Children[rootID] {
		if t.contains(childID, descendantID) {
			return true
		}
	}
	return false
}

// clone copies the arena's index structures. Node style and prop maps are
// shared with the source; mutating operations replace them rather than
// write through.
func (t Tree) clone() Tree {
	next := Tree{
		Roots:    make([]string, len(t.Roots)),
		Nodes:    make(map[string]Node, len(t.Nodes)),
		Children: make(map[string][]string, len(t.Children)),
		Parents:  make(map[string]string, len(t.Parents)),
	}
	copy(next.Roots, t.Roots)
	for id, node := range t.Nodes {
		next.Nodes[id] = node
	}
	for id, children := range t.Children {
		copied := make([]string, len(children))
		copy(copied, children)
		next.Children[id] = copied
	}
	for id, parent := range t.Parents {
		next.Parents[id] = parent
	}
	return next
}

// indexSubtree flattens a nested element into the arena under the given
// parent id ("" for root level).
func (t *Tree) indexSubtree(el PageElement, parentID string) {
	t.Nodes[el.ID] = Node{
		ID:      el.ID,
		Kind:    el.Kind,
		Content: el.Content,
		Style:   el.Style,
		Props:   el.Props,
	}
	if parentID != "" {
		t.Parents[el.ID] = parentID
	}
	if el.Kind.IsContainer() {
		t.Children[el.ID] = []string{}
		for _, child := range el.Children {
			t.indexSubtree(child, el.ID)
			t.Children[el.ID] = append(t.Children[el.ID], child.ID)
		}
	}
}

// detach unlinks a node from its parent's child list or the root list,
// leaving the node and its subtree in the arena.
func (t *Tree) detach(id string) {
	if parentID, ok := t.Parents[id]; ok {
		t.Children[parentID] = removeID(t.Children[parentID], id)
		delete(t.Parents, id)
		return
	}
	t.Roots = removeID(t.Roots, id)
}

// deleteSubtree drops a detached node and everything beneath it from the
// arena.
func (t *Tree) deleteSubtree(id string) {
	for _, childID := range t.Children[id] {
		delete(t.Parents, childID)
		t.deleteSubtree(childID)
	}
	delete(t.Children, id)
	delete(t.Nodes, id)
}

func mergeMaps(base, patch map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

func removeID(ids []string, id string) []string {
	filtered := make([]string, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

func spliceAt(ids []string, index int, id string) []string {
	if index < 0 {
		index = 0
	}
	if index > len(ids) {
		index = len(ids)
	}
	spliced := make([]string, 0, len(ids)+1)
	spliced = append(spliced, ids[:index]...)
	spliced = append(spliced, id)
	spliced = append(spliced, ids[index:]...)
	return spliced
}

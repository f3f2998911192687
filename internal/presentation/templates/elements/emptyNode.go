package elements

// RenderEmptyNode renders the placeholder output for an unknown or
// unresolvable node. A miss never fails the surrounding page.
func RenderEmptyNode() string {
	return `<div></div>`
}

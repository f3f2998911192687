package elements

import (
	"html/template"
	"log"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
)

// NodeRenderer renders child nodes on behalf of container elements.
type NodeRenderer interface {
	RenderNode(nodeID string) string
	GetChildNodeIDs(nodeID string) []string
}

// wrapperTmpl renders the opening tag of an element wrapper. Routing the
// attributes through html/template keeps user-provided style values from
// breaking out of the attribute.
var wrapperTmpl = template.Must(template.New("wrapper").Parse(
	`<div id="el-{{.ID}}" class="{{.Class}}"{{if .Style}} style="{{.Style}}"{{end}}>`))

type wrapperData struct {
	ID    string
	Class string
	Style template.CSS
}

// writeOpenTag writes the opening wrapper div for a node: stable element
// id, resolved classes and resolved inline styles.
func writeOpenTag(html *strings.Builder, node *tree.Node) {
	err := wrapperTmpl.Execute(html, wrapperData{
		ID:    node.ID,
		Class: NodeClasses(node),
		Style: template.CSS(NodeStringStyles(node)),
	})
	if err != nil {
		log.Printf("ERROR: Failed to execute wrapper template for nodeID %s: %v", node.ID, err)
		html.WriteString(`<div>`)
	}
}

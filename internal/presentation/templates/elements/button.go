package elements

import (
	"html/template"
	"log"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

var buttonTmpl = template.Must(template.New("button").Parse(
	`<a href="{{.Href}}" role="button">{{.Label}}</a>`))

type buttonData struct {
	Href  string
	Label string
}

// ButtonRenderer handles call-to-action button elements
type ButtonRenderer struct {
	ctx *rendering.RenderContext
}

// NewButtonRenderer creates a new button renderer
func NewButtonRenderer(ctx *rendering.RenderContext) *ButtonRenderer {
	return &ButtonRenderer{ctx: ctx}
}

func (br *ButtonRenderer) Render(nodeID string) string {
	node := br.ctx.Node(nodeID)
	if node == nil {
		return RenderEmptyNode()
	}

	href := node.Props["href"]
	if href == "" {
		href = "#"
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	err := buttonTmpl.Execute(&out, buttonData{Href: href, Label: node.Content})
	if err != nil {
		log.Printf("ERROR: Failed to execute button template for nodeID %s: %v", nodeID, err)
	}
	out.WriteString(`</div>`)
	return out.String()
}

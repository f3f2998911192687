package elements

import (
	"html/template"
	"log"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

var imageTmpl = template.Must(template.New("image").Parse(
	`<img src="{{.Src}}" alt="{{.Alt}}" loading="lazy" />`))

type imageData struct {
	Src string
	Alt string
}

// ImageRenderer handles static image elements
type ImageRenderer struct {
	ctx *rendering.RenderContext
}

// NewImageRenderer creates a new image renderer
func NewImageRenderer(ctx *rendering.RenderContext) *ImageRenderer {
	return &ImageRenderer{ctx: ctx}
}

func (ir *ImageRenderer) Render(nodeID string) string {
	node := ir.ctx.Node(nodeID)
	if node == nil {
		return RenderEmptyNode()
	}

	var out strings.Builder
	writeOpenTag(&out, node)
	err := imageTmpl.Execute(&out, imageData{
		Src: rendering.SafeImageSource(node.Content),
		Alt: node.Props["alt"],
	})
	if err != nil {
		log.Printf("ERROR: Failed to execute image template for nodeID %s: %v", nodeID, err)
	}
	out.WriteString(`</div>`)
	return out.String()
}

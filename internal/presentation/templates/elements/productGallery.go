package elements

import (
	"fmt"
	"html"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

// ProductGalleryRenderer handles product gallery elements
type ProductGalleryRenderer struct {
	ctx *rendering.RenderContext
}

// NewProductGalleryRenderer creates a new product gallery renderer
func NewProductGalleryRenderer(ctx *rendering.RenderContext) *ProductGalleryRenderer {
	return &ProductGalleryRenderer{ctx: ctx}
}

// Render shows the media item at the form's current index (first item when
// the index is out of range), previous/next controls and a thumbnail strip.
func (pgr *ProductGalleryRenderer) Render(nodeID string) string {
	node := pgr.ctx.Node(nodeID)
	if node == nil || pgr.ctx.Product == nil {
		return RenderEmptyNode()
	}

	media := rendering.BuildMediaList(pgr.ctx.Product)
	current, ok := rendering.CurrentMedia(media, pgr.ctx.Form.MediaIndex)

	var out strings.Builder
	writeOpenTag(&out, node)

	out.WriteString(fmt.Sprintf(`<div class="lp-gallery" data-media-count="%d">`, len(media)))
	out.WriteString(`<div class="lp-gallery-main">`)
	if ok {
		out.WriteString(RenderMediaItem(current))
	} else {
		out.WriteString(RenderMediaItem(rendering.MediaItem{Kind: rendering.MediaImage, Source: rendering.PlaceholderImage}))
	}
	out.WriteString(`</div>`)

	if len(media) > 1 {
		out.WriteString(fmt.Sprintf(`<button type="button" class="%s" aria-label="Previous">&lsaquo;</button>`,
			rendering.GalleryPrevID))
		out.WriteString(fmt.Sprintf(`<button type="button" class="%s" aria-label="Next">&rsaquo;</button>`,
			rendering.GalleryNextID))
		out.WriteString(RenderThumbnailStrip(media, pgr.ctx.Form.MediaIndex))
	}

	out.WriteString(`</div>`)
	out.WriteString(`</div>`)
	return out.String()
}

// RenderMediaItem renders one media item for a gallery's main display:
// recognized watch pages as embedded players, direct files as muted
// autoplaying video, anything else as an image with placeholder fallback.
func RenderMediaItem(item rendering.MediaItem) string {
	switch item.Kind {
	case rendering.MediaEmbed:
		return fmt.Sprintf(`<iframe src="%s" frameborder="0" allowfullscreen></iframe>`,
			html.EscapeString(item.Source))
	case rendering.MediaVideo:
		return fmt.Sprintf(`<video src="%s" autoplay loop muted playsinline></video>`,
			html.EscapeString(item.Source))
	default:
		return fmt.Sprintf(`<img src="%s" alt="" />`,
			html.EscapeString(rendering.SafeImageSource(item.Source)))
	}
}

// RenderThumbnailStrip renders the horizontal thumbnail strip. Each
// thumbnail carries its index, media kind and source as data attributes;
// the thumbnail at activeIndex (first item when out of range) is marked
// active.
func RenderThumbnailStrip(media []rendering.MediaItem, activeIndex int) string {
	if activeIndex < 0 || activeIndex >= len(media) {
		activeIndex = 0
	}

	var out strings.Builder
	out.WriteString(`<div class="lp-gallery-thumbs">`)
	for i, item := range media {
		active := ""
		if i == activeIndex {
			active = " active"
		}
		out.WriteString(fmt.Sprintf(
			`<button type="button" class="%s%s" data-index="%d" data-kind="%s" data-src="%s">`,
			rendering.GalleryThumbClass, active, i, item.Kind, html.EscapeString(item.Source)))
		if item.Kind == rendering.MediaImage {
			out.WriteString(fmt.Sprintf(`<img src="%s" alt="" />`,
				html.EscapeString(rendering.SafeImageSource(item.Source))))
		} else {
			out.WriteString(`<span class="lp-thumb-video">&#9658;</span>`)
		}
		out.WriteString(`</button>`)
	}
	out.WriteString(`</div>`)
	return out.String()
}

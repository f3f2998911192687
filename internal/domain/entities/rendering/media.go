package rendering

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
)

// MediaKind distinguishes how a gallery item is displayed.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaEmbed MediaKind = "embed"
)

// PlaceholderImage replaces any image source that cannot be displayed.
const PlaceholderImage = "https://placehold.co/600x400?text=No+image"

// MediaItem is one entry of a product's combined media list.
type MediaItem struct {
	Kind   MediaKind `json:"kind"`
	Source string    `json:"source"`
}

var vimeoPattern = regexp.MustCompile(`^/(?:video/)?(\d+)`)

// BuildMediaList combines a product's images and videos into a single
// ordered list, images first. Video URLs recognized as YouTube or Vimeo
// watch pages are rewritten to embeddable player URLs; anything else stays
// a native video source.
func BuildMediaList(product *content.Product) []MediaItem {
	if product == nil {
		return nil
	}

	items := make([]MediaItem, 0, len(product.Images)+len(product.Videos))
	for _, image := range product.Images {
		items = append(items, MediaItem{Kind: MediaImage, Source: SafeImageSource(image)})
	}
	for _, video := range product.Videos {
		if embed, ok := EmbedURL(video); ok {
			items = append(items, MediaItem{Kind: MediaEmbed, Source: embed})
		} else {
			items = append(items, MediaItem{Kind: MediaVideo, Source: video})
		}
	}
	return items
}

// CurrentMedia resolves the displayed item for an index, falling back to
// the first item when the index is out of range.
func CurrentMedia(items []MediaItem, index int) (MediaItem, bool) {
	if len(items) == 0 {
		return MediaItem{}, false
	}
	if index < 0 || index >= len(items) {
		return items[0], true
	}
	return items[index], true
}

// EmbedURL rewrites a recognized YouTube or Vimeo watch-page URL to its
// embeddable player URL. The second return is false for anything else,
// including direct video file URLs.
func EmbedURL(raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if id := parsed.Query().Get("v"); id != "" {
			return "https://www.youtube.com/embed/" + id, true
		}
		if rest, ok := strings.CutPrefix(parsed.Path, "/shorts/"); ok && rest != "" {
			return "https://www.youtube.com/embed/" + firstSegment(rest), true
		}
		if rest, ok := strings.CutPrefix(parsed.Path, "/embed/"); ok && rest != "" {
			return "https://www.youtube.com/embed/" + firstSegment(rest), true
		}
	case "youtu.be":
		if id := strings.Trim(parsed.Path, "/"); id != "" {
			return "https://www.youtube.com/embed/" + firstSegment(id), true
		}
	case "vimeo.com", "player.vimeo.com":
		if match := vimeoPattern.FindStringSubmatch(parsed.Path); match != nil {
			return "https://player.vimeo.com/video/" + match[1], true
		}
	}

	return "", false
}

// SafeImageSource returns the given URL when it looks displayable and the
// generic placeholder otherwise. A broken source is a display-time
// fallback, never an error.
func SafeImageSource(raw string) string {
	if raw == "" {
		return PlaceholderImage
	}
	if strings.HasPrefix(raw, "data:image/") || strings.HasPrefix(raw, "/") {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return PlaceholderImage
	}
	return raw
}

func firstSegment(path string) string {
	if i := strings.IndexAny(path, "/?&"); i != -1 {
		return path[:i]
	}
	return path
}

package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
)

func TestBuildMediaListImagesFirstThenVideos(t *testing.T) {
	product := &content.Product{
		Images: []string{"https://cdn.example.com/a.webp", "/media/products/b.webp"},
		Videos: []string{
			"https://www.youtube.com/watch?v=abc123",
			"https://cdn.example.com/clip.mp4",
		},
	}

	items := BuildMediaList(product)
	require.Len(t, items, 4)

	assert.Equal(t, MediaImage, items[0].Kind)
	assert.Equal(t, "https://cdn.example.com/a.webp", items[0].Source)
	assert.Equal(t, MediaImage, items[1].Kind)

	assert.Equal(t, MediaEmbed, items[2].Kind)
	assert.Equal(t, "https://www.youtube.com/embed/abc123", items[2].Source)

	assert.Equal(t, MediaVideo, items[3].Kind)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", items[3].Source)
}

func TestBuildMediaListNilProduct(t *testing.T) {
	assert.Nil(t, BuildMediaList(nil))
}

func TestCurrentMedia(t *testing.T) {
	items := []MediaItem{
		{Kind: MediaImage, Source: "a"},
		{Kind: MediaImage, Source: "b"},
	}

	item, ok := CurrentMedia(items, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", item.Source)

	// Out-of-range indexes fall back to the first item.
	item, ok = CurrentMedia(items, 7)
	assert.True(t, ok)
	assert.Equal(t, "a", item.Source)

	item, ok = CurrentMedia(items, -1)
	assert.True(t, ok)
	assert.Equal(t, "a", item.Source)

	_, ok = CurrentMedia(nil, 0)
	assert.False(t, ok)
}

func TestEmbedURL(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"youtube short link", "https://youtu.be/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"youtube shorts", "https://www.youtube.com/shorts/xyz789", "https://www.youtube.com/embed/xyz789", true},
		{"youtube already embed", "https://www.youtube.com/embed/xyz789", "https://www.youtube.com/embed/xyz789", true},
		{"vimeo page", "https://vimeo.com/123456789", "https://player.vimeo.com/video/123456789", true},
		{"vimeo player", "https://player.vimeo.com/video/123456789", "https://player.vimeo.com/video/123456789", true},
		{"direct file", "https://cdn.example.com/clip.mp4", "", false},
		{"relative path", "/media/clip.mp4", "", false},
		{"garbage", "not a url", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := EmbedURL(tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSafeImageSource(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/a.webp", SafeImageSource("https://cdn.example.com/a.webp"))
	assert.Equal(t, "/media/products/a.webp", SafeImageSource("/media/products/a.webp"))
	assert.Equal(t, "data:image/png;base64,AAAA", SafeImageSource("data:image/png;base64,AAAA"))

	assert.Equal(t, PlaceholderImage, SafeImageSource(""))
	assert.Equal(t, PlaceholderImage, SafeImageSource("javascript:alert(1)"))
	assert.Equal(t, PlaceholderImage, SafeImageSource("ftp://example.com/a.png"))
}

func TestCompiledPageFindSlots(t *testing.T) {
	page := &CompiledPage{Slots: []Slot{
		{Kind: SlotGalleryThumb, Index: 0},
		{Kind: SlotSubmitButton, DOMID: SubmitButtonID},
		{Kind: SlotGalleryThumb, Index: 1},
	}}

	thumbs := page.FindSlots(SlotGalleryThumb)
	require.Len(t, thumbs, 2)
	assert.Equal(t, 0, thumbs[0].Index)
	assert.Equal(t, 1, thumbs[1].Index)

	assert.Empty(t, page.FindSlots(SlotContactInput))
}

func TestFormStateSelectedOption(t *testing.T) {
	var nilForm *FormState
	assert.Equal(t, "", nilForm.SelectedOption("Color"))

	form := &FormState{Selected: map[string]string{"Color": "Red"}}
	assert.Equal(t, "Red", form.SelectedOption("Color"))
	assert.Equal(t, "", form.SelectedOption("Size"))
}

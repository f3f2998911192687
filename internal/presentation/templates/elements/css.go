// Package elements provides per-kind renderers for page elements
package elements

import (
	"sort"
	"strings"

	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
)

// shadowTokens maps the shadow style enum to concrete box-shadow values.
var shadowTokens = map[string]string{
	"small":  "0 1px 2px rgba(0,0,0,0.08)",
	"medium": "0 4px 12px rgba(0,0,0,0.12)",
	"large":  "0 12px 32px rgba(0,0,0,0.2)",
}

// animationTokens maps the animation style enum to class tokens the page
// stylesheet defines.
var animationTokens = map[string]string{
	"fade-in":  "anim-fade-in",
	"slide-up": "anim-slide-up",
	"zoom-in":  "anim-zoom-in",
}

// NodeStringStyles resolves a node's style map into an inline style string.
// Most fields pass through with camelCase keys kebab-cased; the shadow enum
// is expanded to its token and the animation enum is excluded (it resolves
// to a class instead). Keys are emitted in sorted order so output is
// deterministic.
func NodeStringStyles(node *tree.Node) string {
	if node == nil || len(node.Style) == 0 {
		return ""
	}

	keys := make([]string, 0, len(node.Style))
	for key := range node.Style {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var styles []string
	for _, key := range keys {
		value := node.Style[key]
		if value == "" {
			continue
		}
		switch key {
		case "animation":
			continue
		case "shadow":
			if token, ok := shadowTokens[value]; ok {
				styles = append(styles, "box-shadow: "+token)
			}
		default:
			styles = append(styles, kebabCase(key)+": "+value)
		}
	}
	return strings.Join(styles, "; ")
}

// NodeClasses resolves a node's class list: a stable per-kind class plus
// the animation token when one is set.
func NodeClasses(node *tree.Node) string {
	if node == nil {
		return ""
	}
	classes := []string{"lp-el", "lp-" + string(node.Kind)}
	if token, ok := animationTokens[node.Style["animation"]]; ok {
		classes = append(classes, token)
	}
	return strings.Join(classes, " ")
}

func kebabCase(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

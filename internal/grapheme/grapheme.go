// Package grapheme holds the grapheme-cluster helpers shared by the buffer,
// the search engine and the renderer. Every column in hyperion is counted in
// clusters, so all segmentation goes through here.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, uniseg.GraphemeClusterCount(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters into a single string.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	n := 0
	for _, c := range clusters {
		n += len(c)
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the number of terminal cells a cluster occupies. Clusters
// that measure zero (a lone combining mark, control bytes) still take one
// cell so the cursor can sit on them.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// Insertable reports whether r may be typed into a line: printable runes
// and tab. Other control characters are dropped by the buffer.
func Insertable(r rune) bool {
	if r == '\t' {
		return true
	}
	if r == unicode.ReplacementChar {
		return false
	}
	return unicode.IsGraphic(r)
}

// Clean drops the runes of cluster that may not be stored in a line. Format
// characters such as zero width joiners are kept so joined sequences survive.
func Clean(cluster string) string {
	return strings.Map(func(r rune) rune {
		if Insertable(r) || unicode.Is(unicode.Cf, r) {
			return r
		}
		return -1
	}, cluster)
}

// Equal reports whether two cluster sequences are identical.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

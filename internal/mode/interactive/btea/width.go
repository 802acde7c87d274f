// ABOUTME: Grapheme-aware column measurement for the input line
// ABOUTME: Long input scrolls horizontally by keeping the tail that fits

package btea

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemes splits s into clusters with their column widths.
func graphemes(s string) (clusters []string, widths []int) {
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
		widths = append(widths, clusterWidth(cluster))
	}
	return clusters, widths
}

func clusterWidth(cluster string) int {
	for _, r := range cluster {
		return runewidth.RuneWidth(r)
	}
	return 0
}

// cellWidth returns the number of terminal columns s occupies.
func cellWidth(s string) int {
	_, widths := graphemes(s)
	total := 0
	for _, w := range widths {
		total += w
	}
	return total
}

// tailToWidth returns the longest suffix of s that fits in width columns,
// cut on a grapheme boundary.
func tailToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	clusters, widths := graphemes(s)
	used := 0
	start := len(clusters)
	for start > 0 && used+widths[start-1] <= width {
		start--
		used += widths[start]
	}
	out := ""
	for _, c := range clusters[start:] {
		out += c
	}
	return out
}

// dropLastGrapheme removes the final user-perceived character from s.
func dropLastGrapheme(s string) string {
	clusters, _ := graphemes(s)
	if len(clusters) == 0 {
		return s
	}
	return s[:len(s)-len(clusters[len(clusters)-1])]
}

// wrap.go — Greedy width-bounded line wrapping and block measurement.
package caption

import (
	"strings"

	"golang.org/x/image/font"
)

// lineSpacing is the multiplier applied to each line's ink height when
// stacking lines into a block.
const lineSpacing = 1.05

// wrapText splits text into lines whose rendered width fits maxWidth pixels,
// accumulating words greedily. Runs of whitespace collapse to single spaces
// first; empty input yields no lines. A single word wider than maxWidth
// stays on its own line uncut — character-level truncation is a separate
// overflow fallback. Pure: no canvas access, safe to call repeatedly at
// different font sizes.
func wrapText(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		test := current + " " + word
		if lineWidth(face, test) <= maxWidth {
			current = test
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}

// lineWidth measures the ink width of s in pixels.
func lineWidth(face font.Face, s string) int {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.X - bounds.Min.X).Ceil()
}

// lineHeight measures the ink height of s in pixels.
func lineHeight(face font.Face, s string) int {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.Y - bounds.Min.Y).Ceil()
}

// blockHeight is the stacked pixel height of lines, including inter-line
// spacing. An empty slice measures zero.
func blockHeight(face font.Face, lines []string) int {
	total := 0
	for _, ln := range lines {
		total += int(float64(lineHeight(face, ln)) * lineSpacing)
	}
	return total
}

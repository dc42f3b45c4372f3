// fit.go — Shrink-to-fit font sizing and overflow resolution.
package caption

import (
	"strings"

	"golang.org/x/image/font"
)

// sizeStep is the decrement between candidate sizes in the downward scan.
const sizeStep = 2

const ellipsis = "…"

// layout is the resolved geometry for one render call: a single shared face
// and size, and the wrapped lines of both caption slots.
type layout struct {
	face        font.Face
	size        int
	topLines    []string
	bottomLines []string
}

// fitText finds the largest font size, no smaller than o.MinFontSize, at
// which each slot's wrapped block fits its own height budget of
// h×MaxTextHeightRatio. It scans downward from the starting size (explicit
// override or h×BaseFontRatio) in sizeStep decrements, re-wrapping both
// slots at every candidate; the first fitting size wins. The search never
// fails: once the floor is reached, shrinkToHeight truncates and merges
// lines until both blocks fit their budgets.
func fitText(fr *FontResolver, top, bottom string, o Options, h, maxLineWidth int) layout {
	budget := max(10, int(float64(h)*o.MaxTextHeightRatio))

	size := o.FontSize
	if size <= 0 {
		size = max(o.MinFontSize, int(float64(h)*o.BaseFontRatio))
	}

	for {
		size = max(size, o.MinFontSize)
		face := fr.Face(size)
		topLines := wrapText(top, face, maxLineWidth)
		bottomLines := wrapText(bottom, face, maxLineWidth)

		fits := blockHeight(face, topLines) <= budget &&
			blockHeight(face, bottomLines) <= budget
		if fits || size == o.MinFontSize {
			return layout{
				face:        face,
				size:        size,
				topLines:    shrinkToHeight(topLines, face, budget, maxLineWidth),
				bottomLines: shrinkToHeight(bottomLines, face, budget, maxLineWidth),
			}
		}
		size -= sizeStep
	}
}

// shrinkToHeight reduces lines until the block fits allowedHeight: first
// every line is width-truncated, then the last two lines are merged (and
// re-truncated) until the block fits or a single line remains. Line count
// strictly decreases per merge, so the loop always terminates.
func shrinkToHeight(lines []string, face font.Face, allowedHeight, maxWidth int) []string {
	if blockHeight(face, lines) <= allowedHeight {
		return lines
	}

	shrunk := make([]string, len(lines))
	for i, ln := range lines {
		shrunk[i] = truncateToWidth(ln, face, maxWidth)
	}
	for blockHeight(face, shrunk) > allowedHeight && len(shrunk) > 1 {
		merged := strings.TrimSpace(shrunk[len(shrunk)-2] + " " + shrunk[len(shrunk)-1])
		merged = truncateToWidth(merged, face, maxWidth)
		shrunk = append(shrunk[:len(shrunk)-2], merged)
	}
	return shrunk
}

// truncateToWidth returns the longest prefix of line, plus an ellipsis, that
// fits maxWidth pixels. The binary search runs over the rune count, so the
// cut is correct for multi-byte text and variable-width glyphs. Lines that
// already fit are returned unchanged.
func truncateToWidth(line string, face font.Face, maxWidth int) string {
	if line == "" || lineWidth(face, line) <= maxWidth {
		return line
	}

	runes := []rune(line)
	low, high := 0, len(runes)
	best := ""
	for low <= high {
		mid := (low + high) / 2
		candidate := strings.TrimRight(string(runes[:mid]), " ") + ellipsis
		if lineWidth(face, candidate) <= maxWidth {
			best = candidate
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	if best != "" {
		return best
	}

	// Even the bare ellipsis overflows (degenerate budget or zero-width
	// metrics); estimate a cut from the average glyph width instead.
	cut := max(1, len(runes)/2)
	if avg := float64(lineWidth(face, line)) / float64(len(runes)); avg > 0 {
		cut = max(1, int(float64(maxWidth)/avg))
	}
	cut = min(cut, len(runes))
	return strings.TrimRight(string(runes[:cut]), " ") + ellipsis
}

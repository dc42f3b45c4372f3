// Package caption composes meme-style caption text onto raster images.
//
// The pipeline for one call is linear: normalize the input image, resolve a
// font, search downward for the largest font size whose wrapped captions fit
// their height budgets, resolve any remaining overflow by truncation and
// line merging, then draw both blocks with an outline stroke. The engine is
// stateless between calls and safe for concurrent use as long as two calls
// do not share a canvas.
package caption

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrNilImage is the single fatal error: Render was called without an image.
var ErrNilImage = errors.New("caption: nil input image")

// Render composes topText and bottomText onto img and returns the result.
// The input is normalized (downscaled when oversized, converted to RGBA)
// before any text measurement, and the output always has the normalized
// dimensions. An empty caption leaves its slot untouched; with both empty
// the normalized image comes back without a pixel changed.
//
// Every anomaly short of a nil image degrades instead of failing: missing
// fonts fall back to embedded ones, oversized text shrinks then truncates,
// and lines that would cross the bottom margin are silently skipped.
func Render(img image.Image, topText, bottomText string, o Options) (*image.RGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	o = o.withDefaults()

	canvas := Normalize(img)
	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()

	padding := max(4, int(float64(min(w, h))*o.PaddingRatio))
	maxTextWidth := max(10, int(float64(w)*o.MaxWidthRatio))
	maxLineWidth := maxTextWidth - 2*padding

	fr := ResolveFont(o.FontPath)
	lay := fitText(fr, topText, bottomText, o, h, maxLineWidth)
	strokeWidth := max(1, int(float64(lay.size)*o.StrokeWidthRatio))

	// Top block flows down from the padding line.
	topEnd := drawBlock(canvas, lay.face, lay.topLines, padding, w, h, padding, strokeWidth, o)

	// Bottom block is anchored to the bottom margin, clamped below the top
	// block so the two never overlap.
	bottomStart := h - blockHeight(lay.face, lay.bottomLines) - padding
	if bottomStart < topEnd+padding {
		bottomStart = max(topEnd+padding, padding)
	}
	drawBlock(canvas, lay.face, lay.bottomLines, bottomStart, w, h, padding, strokeWidth, o)

	return canvas, nil
}

// drawBlock draws lines top-down starting at startY, horizontally centering
// each one. A line whose bottom edge would cross h−padding stops the block:
// remaining lines are skipped, never drawn out of bounds. Returns the y
// position after the last drawn line.
func drawBlock(dst *image.RGBA, face font.Face, lines []string, startY, w, h, padding, strokeWidth int, o Options) int {
	y := startY
	for _, ln := range lines {
		bounds, _ := font.BoundString(face, ln)
		lineW := (bounds.Max.X - bounds.Min.X).Ceil()
		lineH := (bounds.Max.Y - bounds.Min.Y).Ceil()
		if y+lineH > h-padding {
			break
		}
		x := max(0, (w-lineW)/2)
		drawStroked(dst, face, ln, x, y, bounds, strokeWidth, o.TextFill, o.StrokeFill)
		y += int(float64(lineH) * lineSpacing)
	}
	return y
}

// strokeOffsets are the 8 compass directions for the manual outline pass.
var strokeOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// drawStroked paints text with an outline: the stroke color is drawn at
// strokeWidth offsets in the 8 compass directions, then the fill pass goes
// on top. x and y address the top-left corner of the line's ink box; bounds
// must be the BoundString result for text on face.
func drawStroked(dst *image.RGBA, face font.Face, text string, x, y int, bounds fixed.Rectangle26_6, strokeWidth int, fill, stroke color.Color) {
	dot := fixed.Point26_6{
		X: fixed.I(x) - bounds.Min.X,
		Y: fixed.I(y) - bounds.Min.Y,
	}

	d := &font.Drawer{Dst: dst, Face: face, Src: image.NewUniform(stroke)}
	for _, off := range strokeOffsets {
		d.Dot = fixed.Point26_6{
			X: dot.X + fixed.I(off[0]*strokeWidth),
			Y: dot.Y + fixed.I(off[1]*strokeWidth),
		}
		d.DrawString(text)
	}

	d.Src = image.NewUniform(fill)
	d.Dot = dot
	d.DrawString(text)
}

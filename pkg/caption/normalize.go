// normalize.go — Input image normalization: RGBA conversion and bounded downscaling.
package caption

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// Caps on the working canvas. Text measurement is O(candidate sizes × lines),
// so the canvas is bounded before any glyph work happens.
const (
	MaxDimension = 4000
	MaxPixels    = 5000 * 5000
)

// Normalize converts img to a zero-origin RGBA canvas, downscaling it first
// if either side exceeds MaxDimension or the total pixel count exceeds
// MaxPixels. Aspect ratio is preserved and images within the caps are
// returned at their original size; Normalize never upscales. The result is
// always a fresh buffer, so the caller's image is left untouched.
func Normalize(img image.Image) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if w > MaxDimension || h > MaxDimension {
		scale := math.Min(float64(MaxDimension)/float64(w), float64(MaxDimension)/float64(h))
		return toRGBA(imaging.Resize(img, scaled(w, scale), scaled(h, scale), imaging.Lanczos))
	}
	if w*h > MaxPixels {
		scale := math.Sqrt(float64(MaxPixels) / float64(w*h))
		return toRGBA(imaging.Resize(img, scaled(w, scale), scaled(h, scale), imaging.Lanczos))
	}
	return toRGBA(img)
}

func scaled(dim int, scale float64) int {
	return max(1, int(float64(dim)*scale))
}

// toRGBA copies img into a zero-origin RGBA buffer.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

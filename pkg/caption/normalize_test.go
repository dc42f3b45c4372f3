package caption

import (
	"image"
	"testing"
)

func TestNormalizeKeepsSmallImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 200))
	out := Normalize(img)
	if out.Bounds().Dx() != 300 || out.Bounds().Dy() != 200 {
		t.Fatalf("in-cap image resized to %v", out.Bounds())
	}
}

func TestNormalizeDownscalesOversized(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8000, 6000))
	out := Normalize(img)

	w, h := out.Bounds().Dx(), out.Bounds().Dy()
	if max(w, h) > MaxDimension {
		t.Fatalf("longer side = %d, want <= %d", max(w, h), MaxDimension)
	}
	if w*h > MaxPixels {
		t.Fatalf("pixel count = %d, want <= %d", w*h, MaxPixels)
	}
	// 8000x6000 is 4:3 and must stay 4:3.
	if w != 4000 || h != 3000 {
		t.Fatalf("downscaled to %dx%d, want 4000x3000", w, h)
	}
}

func TestNormalizeNonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(50, 70, 350, 270))
	out := Normalize(img)
	if out.Bounds().Min != (image.Point{}) {
		t.Fatalf("origin = %v, want (0,0)", out.Bounds().Min)
	}
	if out.Bounds().Dx() != 300 || out.Bounds().Dy() != 200 {
		t.Fatalf("size = %v, want 300x200", out.Bounds())
	}
}

func TestNormalizeCopies(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	out := Normalize(img)
	out.Pix[0] = 0xFF
	if img.Pix[0] == 0xFF {
		t.Fatal("Normalize shares the input buffer")
	}
}

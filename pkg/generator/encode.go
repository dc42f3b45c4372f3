// encode.go — Format-specific encoders behind one dispatch point.
package generator

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// jpegQuality balances meme legibility against file size.
const jpegQuality = 92

// encode writes img to w in the format named by ext.
func encode(w io.Writer, ext string, img image.Image) error {
	switch ext {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png, .jpg, or .bmp", ext)
	}
}

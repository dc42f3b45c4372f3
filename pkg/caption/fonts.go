// fonts.go — Font resolution with custom TTF support and embedded fallbacks.
// Uses golang.org/x/image/font for OpenType rendering. Falls back to the
// embedded Go Bold font when no usable font file is found, and to a packaged
// bitmap face when even face creation fails.
package caption

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// defaultFontPaths are tried in order when no explicit path is given.
// Impact first, matching the classic meme look where installed.
var defaultFontPaths = []string{
	"assets/fonts/impact.ttf",
	"assets/fonts/Impact.ttf",
	"/usr/share/fonts/truetype/impact/impact.ttf",
	"/usr/share/fonts/truetype/msttcorefonts/Impact.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
}

// FontResolver holds the one parsed font shared by a render call. The
// shrink-to-fit search asks it for faces at successive sizes without
// re-reading any file.
type FontResolver struct {
	parsed *opentype.Font
}

// ResolveFont returns a resolver for the first loadable font among fontPath
// and the default search paths, falling back to the embedded Go Bold font.
// It never fails: unreadable or unparseable candidates are skipped silently.
func ResolveFont(fontPath string) *FontResolver {
	candidates := defaultFontPaths
	if fontPath != "" {
		candidates = append([]string{fontPath}, defaultFontPaths...)
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		return &FontResolver{parsed: parsed}
	}

	parsed, err := opentype.Parse(gobold.TTF)
	if err != nil {
		// Embedded font data is known-good; if parsing still fails the
		// resolver runs on the bitmap face alone.
		return &FontResolver{}
	}
	return &FontResolver{parsed: parsed}
}

// Face returns a font face at the given pixel size. Degenerate sizes and
// face-creation failures degrade to a fixed 7x13 bitmap face.
func (fr *FontResolver) Face(size int) font.Face {
	if fr.parsed == nil || size <= 0 {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(fr.parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

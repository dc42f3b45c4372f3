// Package generator writes rendered memes to image files.
//
// All output follows one pipeline: resolve an image.Image first (the
// pre-rendered meme, or a solid-color canvas when none is given), then
// encode it in the format inferred from the file extension.
package generator

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Config holds parameters for output generation.
type Config struct {
	Width  int         // Pixel width for solid canvases (default: 800)
	Height int         // Pixel height for solid canvases (default: 600)
	Color  string      // Hex "#rrggbb" or "random"
	Image  image.Image // Pre-rendered image; overrides Width/Height/Color
}

// Generate creates an output file. The format is inferred from the file
// extension: ".png", ".jpg"/".jpeg", or ".bmp". If cfg.Image is nil, a
// solid-color canvas is created from cfg.Color/Width/Height.
func Generate(output string, cfg Config) error {
	img, err := resolveImage(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := encode(f, strings.ToLower(filepath.Ext(output)), img); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}
	return nil
}

// GenerateToWriter writes the image to w in the format given by ext
// (".png", ".jpg", ".jpeg", or ".bmp"). Useful for in-memory generation,
// e.g. HTTP responses.
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	img, err := resolveImage(cfg)
	if err != nil {
		return err
	}
	return encode(w, strings.ToLower(ext), img)
}

// resolveImage returns the configured image, creating a solid-color canvas
// if none is provided.
func resolveImage(cfg Config) (image.Image, error) {
	if cfg.Image != nil {
		return cfg.Image, nil
	}

	w := cfg.Width
	if w <= 0 {
		w = 800
	}
	h := cfg.Height
	if h <= 0 {
		h = 600
	}

	c, err := ParseColor(cfg.Color)
	if err != nil {
		return nil, err
	}
	return NewSolidImage(w, h, c), nil
}

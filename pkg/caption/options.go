// options.go — Per-call rendering tunables.
package caption

import "image/color"

// Options carries every tunable of a render call. The zero value is usable:
// unset fields are filled with the defaults below, so callers only set what
// they want to change. There is no ambient configuration; two concurrent
// renders with different Options never interfere.
type Options struct {
	FontPath           string      // explicit TTF/OTF path; empty tries the default search paths
	FontSize           int         // explicit starting size; 0 derives it from BaseFontRatio
	BaseFontRatio      float64     // starting size as a fraction of image height (default 0.06)
	MaxTextHeightRatio float64     // per-slot block height budget as a fraction of height (default 0.35)
	MinFontSize        int         // floor for the shrink-to-fit search (default 12)
	PaddingRatio       float64     // margin as a fraction of min(W,H), 4px absolute floor (default 0.02)
	StrokeWidthRatio   float64     // outline width as a fraction of the resolved font size (default 0.06)
	StrokeFill         color.Color // outline color (default black)
	TextFill           color.Color // glyph fill color (default white)
	MaxWidthRatio      float64     // line width budget as a fraction of image width (default 0.95)
}

// withDefaults fills unset fields with their documented defaults.
func (o Options) withDefaults() Options {
	if o.BaseFontRatio <= 0 {
		o.BaseFontRatio = 0.06
	}
	if o.MaxTextHeightRatio <= 0 {
		o.MaxTextHeightRatio = 0.35
	}
	if o.MinFontSize <= 0 {
		o.MinFontSize = 12
	}
	if o.PaddingRatio <= 0 {
		o.PaddingRatio = 0.02
	}
	if o.StrokeWidthRatio <= 0 {
		o.StrokeWidthRatio = 0.06
	}
	if o.StrokeFill == nil {
		o.StrokeFill = color.Black
	}
	if o.TextFill == nil {
		o.TextFill = color.White
	}
	if o.MaxWidthRatio <= 0 || o.MaxWidthRatio > 1 {
		o.MaxWidthRatio = 0.95
	}
	return o
}

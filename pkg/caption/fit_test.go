package caption

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/image/font/basicfont"
)

func TestTruncateToWidthShortLineUnchanged(t *testing.T) {
	face := basicfont.Face7x13
	if got := truncateToWidth("ok", face, 1000); got != "ok" {
		t.Fatalf("truncateToWidth = %q, want %q", got, "ok")
	}
	if got := truncateToWidth("", face, 10); got != "" {
		t.Fatalf("truncateToWidth(empty) = %q, want empty", got)
	}
}

func TestTruncateToWidthAddsEllipsis(t *testing.T) {
	face := basicfont.Face7x13
	const maxWidth = 60
	got := truncateToWidth(strings.Repeat("wide text ", 10), face, maxWidth)
	if !strings.HasSuffix(got, ellipsis) {
		t.Fatalf("truncated line %q lacks ellipsis", got)
	}
	if w := lineWidth(face, got); w > maxWidth {
		t.Fatalf("truncated line is %dpx, exceeds %d", w, maxWidth)
	}
}

// The cut runs over runes, so multi-byte text never ends up split inside a
// character.
func TestTruncateToWidthMultiByte(t *testing.T) {
	face := basicfont.Face7x13
	got := truncateToWidth(strings.Repeat("ÑANDÚ ÑOÑO ", 8), face, 70)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if w := lineWidth(face, got); w > 70 {
		t.Fatalf("truncated line is %dpx, exceeds 70", w)
	}
}

func TestTruncateToWidthDegenerateBudget(t *testing.T) {
	face := basicfont.Face7x13
	// Budget narrower than the ellipsis itself: the estimate path must
	// still return something without panicking.
	got := truncateToWidth("unfittable", face, 1)
	if got == "" {
		t.Fatal("degenerate budget produced empty result")
	}
}

func TestShrinkToHeightFittingBlockUntouched(t *testing.T) {
	face := basicfont.Face7x13
	lines := []string{"a", "b"}
	got := shrinkToHeight(lines, face, 1000, 1000)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("fitting block was modified: %v", got)
	}
}

func TestShrinkToHeightMergesDownToOneLine(t *testing.T) {
	face := basicfont.Face7x13
	lines := []string{"first line", "second line", "third line", "fourth line"}
	oneLine := blockHeight(face, []string{"x"})

	got := shrinkToHeight(lines, face, oneLine, 80)
	if len(got) != 1 {
		t.Fatalf("shrink left %d lines, want 1: %v", len(got), got)
	}
	if w := lineWidth(face, got[0]); w > 80 {
		t.Errorf("merged line is %dpx, exceeds 80", w)
	}
}

func TestFitTextStopsAtFirstFittingSize(t *testing.T) {
	fr := ResolveFont("")
	o := Options{}.withDefaults()
	lay := fitText(fr, "HI", "", o, 600, 500)

	want := max(o.MinFontSize, int(600*o.BaseFontRatio))
	if lay.size != want {
		t.Fatalf("size = %d, want starting size %d for trivially fitting text", lay.size, want)
	}
	if len(lay.topLines) != 1 || lay.topLines[0] != "HI" {
		t.Fatalf("topLines = %v, want [HI]", lay.topLines)
	}
	if lay.bottomLines != nil {
		t.Fatalf("empty slot produced lines: %v", lay.bottomLines)
	}
}

func TestFitTextNeverBelowMinimum(t *testing.T) {
	fr := ResolveFont("")
	o := Options{}.withDefaults()
	long := strings.TrimSpace(strings.Repeat("OVERFLOW ", 60))

	lay := fitText(fr, long, long, o, 120, 100)
	if lay.size < o.MinFontSize {
		t.Fatalf("size = %d, below minimum %d", lay.size, o.MinFontSize)
	}

	budget := max(10, int(120*o.MaxTextHeightRatio))
	// At the floor the overflow pass has to force both blocks under budget,
	// or hand back a single line per slot.
	for name, lines := range map[string][]string{"top": lay.topLines, "bottom": lay.bottomLines} {
		if h := blockHeight(lay.face, lines); h > budget && len(lines) > 1 {
			t.Errorf("%s block height %d exceeds budget %d with %d lines", name, h, budget, len(lines))
		}
	}
}

func TestFitTextExplicitSizeClampedUp(t *testing.T) {
	fr := ResolveFont("")
	o := Options{FontSize: 4}.withDefaults()
	lay := fitText(fr, "TEXT", "", o, 600, 500)
	if lay.size != o.MinFontSize {
		t.Fatalf("size = %d, want clamp to minimum %d", lay.size, o.MinFontSize)
	}
}

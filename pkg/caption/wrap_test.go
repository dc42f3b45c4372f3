package caption

import (
	"reflect"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestWrapTextEmpty(t *testing.T) {
	face := basicfont.Face7x13
	for _, input := range []string{"", "   ", "\t\n  \t"} {
		if lines := wrapText(input, face, 100); lines != nil {
			t.Errorf("wrapText(%q) = %v, want nil", input, lines)
		}
	}
}

func TestWrapTextCollapsesWhitespace(t *testing.T) {
	face := basicfont.Face7x13
	lines := wrapText("one   two\t\tthree\n four", face, 10000)
	want := []string{"one two three four"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("wrapText = %v, want %v", lines, want)
	}
}

func TestWrapTextLinesFitWidth(t *testing.T) {
	face := basicfont.Face7x13
	const maxWidth = 80
	lines := wrapText("the quick brown fox jumps over the lazy dog", face, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}
	for _, ln := range lines {
		if len(strings.Fields(ln)) > 1 && lineWidth(face, ln) > maxWidth {
			t.Errorf("line %q is %dpx, exceeds %d", ln, lineWidth(face, ln), maxWidth)
		}
	}
}

func TestWrapTextLongWordKeptWhole(t *testing.T) {
	face := basicfont.Face7x13
	word := strings.Repeat("x", 40) // far wider than the budget
	lines := wrapText("a "+word+" b", face, 50)
	found := false
	for _, ln := range lines {
		if ln == word {
			found = true
		}
	}
	if !found {
		t.Fatalf("oversized word was split or merged: %v", lines)
	}
}

func TestWrapTextIdempotent(t *testing.T) {
	face := basicfont.Face7x13
	text := "some caption text that wraps into several lines for sure"
	first := wrapText(text, face, 90)
	second := wrapText(text, face, 90)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("wrapping is not deterministic: %v vs %v", first, second)
	}
}

func TestBlockHeight(t *testing.T) {
	face := basicfont.Face7x13
	if got := blockHeight(face, nil); got != 0 {
		t.Errorf("blockHeight(nil) = %d, want 0", got)
	}
	one := blockHeight(face, []string{"line"})
	if one <= 0 {
		t.Fatalf("blockHeight of one line = %d, want > 0", one)
	}
	three := blockHeight(face, []string{"line", "line", "line"})
	if three != 3*one {
		t.Errorf("blockHeight of three equal lines = %d, want %d", three, 3*one)
	}
}

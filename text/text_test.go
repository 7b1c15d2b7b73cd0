package text

import (
	"testing"

	"github.com/flexengine/renderer/font"
)

func testFont() *font.Font {
	return &font.Font{
		Glyphs: map[rune]font.Glyph{
			'A': {Rune: 'A', Width: 10, Height: 12, Advance: 9},
			'V': {Rune: 'V', Width: 10, Height: 12, Advance: 9},
		},
		Kerning: map[[2]rune]float32{
			{'A', 'V'}: -2,
		},
	}
}

func TestLayout_AppliesKerningBetweenAdjacentGlyphs(t *testing.T) {
	f := testFont()
	quads := Layout(f, "AV")
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2", len(quads))
	}
	if quads[0].X != 0 {
		t.Errorf("first glyph X = %v, want 0", quads[0].X)
	}
	// second glyph's pen position is the first glyph's advance (9) plus the
	// kerning adjustment (-2) = 7.
	if quads[1].X != 7 {
		t.Errorf("second glyph X = %v, want 7", quads[1].X)
	}
}

func TestLayout_SkipsRunesMissingFromAtlas(t *testing.T) {
	f := testFont()
	quads := Layout(f, "A?V")
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2 (missing rune skipped)", len(quads))
	}
}

func TestWidth_MatchesLastLayoutQuadPlusAdvance(t *testing.T) {
	f := testFont()
	w := Width(f, "AV")
	if w != 16 { // 9 + (9 - 2)
		t.Errorf("Width = %v, want 16", w)
	}
}

func TestCache_FlushClearsQueueAndSkipsUnregisteredFonts(t *testing.T) {
	c := NewCache()
	c.RegisterFont("body", testFont())
	c.Submit(Entry{FontName: "body", Text: "AV"})
	c.Submit(Entry{FontName: "missing", Text: "AV"})

	out := c.Flush()
	if len(out) != 1 {
		t.Fatalf("got %d laid-out entries, want 1", len(out))
	}
	if len(c.entries) != 0 {
		t.Errorf("expected queue cleared after flush, got %d entries", len(c.entries))
	}
}

package font

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestPacker_PlacesGlyphsWithoutOverlapAndStaysSquareish(t *testing.T) {
	p := newPacker(padding)
	type rect struct{ x, y, w, h, ch int }
	var placed []rect

	for i := 0; i < 20; i++ {
		w, h := 10+i%5, 16
		x, y, ch := p.place(w, h)
		placed = append(placed, rect{x, y, w, h, ch})
	}

	for i, a := range placed {
		for j, b := range placed {
			if i == j || a.ch != b.ch {
				continue
			}
			overlapX := a.x < b.x+b.w && b.x < a.x+a.w
			overlapY := a.y < b.y+b.h && b.y < a.y+a.h
			if overlapX && overlapY {
				t.Fatalf("glyph %d overlaps glyph %d in channel %d: %+v vs %+v", i, j, a.ch, a, b)
			}
		}
	}

	w, h := p.width(), p.height()
	ratio := float64(w) / float64(h)
	if ratio > 4 || ratio < 0.25 {
		t.Errorf("atlas %dx%d is far from square (ratio %v)", w, h, ratio)
	}
}

func TestPaintSDFCell_CenterExceedsCorner(t *testing.T) {
	g := Glyph{AtlasX: 0, AtlasY: 0, Width: 20, Height: 20, Channel: 0}
	atlas := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	paintSDFCell(atlas, g, spread)

	center := atlas.Pix[atlas.PixOffset(10, 10)]
	corner := atlas.Pix[atlas.PixOffset(0, 0)]
	if center <= corner {
		t.Errorf("expected center distance value (%d) to exceed corner value (%d)", center, corner)
	}
}

// TestAtlasImage_WriteThenLoadPreservesBounds round-trips an atlas PNG
// through writeAtlasImage and loadAtlasImage and checks the loaded image
// keeps the written bounds. It does not call LoadFont.
func TestAtlasImage_WriteThenLoadPreservesBounds(t *testing.T) {
	dir := t.TempDir()
	atlasPath := filepath.Join(dir, "atlas.png")

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	f, err := os.Create(atlasPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := writeAtlasImage(atlasPath, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	loaded, err := loadAtlasImage(atlasPath)
	if err != nil {
		t.Fatalf("loadAtlasImage: %v", err)
	}
	if loaded.Bounds() != img.Bounds() {
		t.Errorf("loaded atlas bounds = %v, want %v", loaded.Bounds(), img.Bounds())
	}
}

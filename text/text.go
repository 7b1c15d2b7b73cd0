package text

import (
	"github.com/flexengine/renderer/core"
	"github.com/flexengine/renderer/font"
)

// GlyphQuad is one glyph's placement within a laid-out string, in the
// string's own local space (screen pixels for DrawStringSS, world units
// scaled by the caller for DrawStringWS).
type GlyphQuad struct {
	Rune          rune
	X, Y          float32 // baseline-relative: pen position plus BearingX, and BearingY
	Width, Height float32
	AtlasX        int
	AtlasY        int
	Channel       int
}

// Layout walks s rune by rune through f, accumulating advance + kerning,
// and returns one GlyphQuad per renderable rune (runes missing from the
// atlas are skipped, matching the "objects using that slot" placeholder
// convention used elsewhere for missing resources).
func Layout(f *font.Font, s string) []GlyphQuad {
	quads := make([]GlyphQuad, 0, len(s))
	var pen float32
	var prev rune
	havePrev := false

	for _, r := range s {
		g, ok := f.Glyphs[r]
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			pen += f.Kerning[[2]rune{prev, r}]
		}

		quads = append(quads, GlyphQuad{
			Rune:    r,
			X:       pen + g.BearingX,
			Y:       g.BearingY,
			Width:   float32(g.Width),
			Height:  float32(g.Height),
			AtlasX:  g.AtlasX,
			AtlasY:  g.AtlasY,
			Channel: g.Channel,
		})

		pen += g.Advance
		prev = r
		havePrev = true
	}
	return quads
}

// Width returns the total advance width s would occupy if laid out with f,
// without allocating per-glyph quads — used for e.g. centering text.
func Width(f *font.Font, s string) float32 {
	var pen float32
	var prev rune
	havePrev := false
	for _, r := range s {
		g, ok := f.Glyphs[r]
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			pen += f.Kerning[[2]rune{prev, r}]
		}
		pen += g.Advance
		prev = r
		havePrev = true
	}
	return pen
}

// Cache holds every registered font and one submission queue per frame,
// the consumer side of hal.Device.DrawStringSS/DrawStringWS.
type Cache struct {
	fonts   map[string]*font.Font
	entries []Entry
}

// Entry is one queued string submission awaiting layout + draw.
type Entry struct {
	FontName    string
	Text        string
	Pos         core.Vec3
	Color       core.Vec4
	ScreenSpace bool
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{fonts: make(map[string]*font.Font)}
}

// RegisterFont makes name available to Submit/Layout calls.
func (c *Cache) RegisterFont(name string, f *font.Font) {
	c.fonts[name] = f
}

// Font returns the font registered under name, or nil if none was.
func (c *Cache) Font(name string) *font.Font { return c.fonts[name] }

// Submit queues one string draw for the current frame.
func (c *Cache) Submit(e Entry) {
	c.entries = append(c.entries, e)
}

// Flush returns every queued entry's laid-out glyph quads paired with its
// submission, then clears the queue for the next frame.
func (c *Cache) Flush() []LaidOutEntry {
	out := make([]LaidOutEntry, 0, len(c.entries))
	for _, e := range c.entries {
		f := c.fonts[e.FontName]
		if f == nil {
			continue
		}
		out = append(out, LaidOutEntry{Entry: e, Quads: Layout(f, e.Text)})
	}
	c.entries = c.entries[:0]
	return out
}

// LaidOutEntry pairs a queued submission with its resolved glyph quads.
type LaidOutEntry struct {
	Entry
	Quads []GlyphQuad
}

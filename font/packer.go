package font

// packer assigns each glyph a rectangle within a four-channel atlas, cycling
// through channels R, G, B, A before growing the atlas itself. Growth
// alternates between widening and heightening so the atlas stays close to
// square regardless of how many glyphs are packed, rather than growing into
// a single long strip.
type packer struct {
	padding int

	atlasW, atlasH int
	channel        int

	// shelf packing per growth pass: cursorX/cursorY track the next free
	// position on the current shelf, shelfH the tallest glyph placed on it.
	cursorX, cursorY, shelfH int
}

func newPacker(padding int) *packer {
	return &packer{
		padding: padding,
		atlasW:  64,
		atlasH:  64,
	}
}

// place finds room for a glyph of size w x h, growing the atlas and/or
// advancing to the next channel as needed, and returns its origin plus the
// channel (0..3) its distance field belongs in.
func (p *packer) place(w, h int) (x, y, channel int) {
	for {
		if p.cursorX+w > p.atlasW {
			p.cursorX = 0
			p.cursorY += p.shelfH
			p.shelfH = 0
		}
		if p.cursorY+h > p.atlasH {
			p.growOrAdvanceChannel()
			continue
		}
		x, y = p.cursorX, p.cursorY
		p.cursorX += w + p.padding
		if h > p.shelfH {
			p.shelfH = h
		}
		return x, y, p.channel
	}
}

// growOrAdvanceChannel moves packing to the next channel once the current
// channel has no room left; once all four channels have been tried at the current size, the
// atlas itself grows along its shorter axis and packing restarts from R.
func (p *packer) growOrAdvanceChannel() {
	p.channel++
	p.cursorX, p.cursorY, p.shelfH = 0, 0, 0
	if p.channel < 4 {
		return
	}
	p.channel = 0
	if p.atlasW <= p.atlasH {
		p.atlasW *= 2
	} else {
		p.atlasH *= 2
	}
}

func (p *packer) width() int  { return p.atlasW }
func (p *packer) height() int { return p.atlasH }

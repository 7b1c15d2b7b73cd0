package font

import (
	"image"
	"math"
)

// paintSDFCell writes an analytic signed-distance approximation for g's
// glyph shape into atlas, in g's assigned channel. Distance is measured from
// an inset rectangle silhouette representing the glyph's ink area;
// the encoding matches the standard SDF atlas convention (0.5 at the edge,
// increasing toward the inside, decreasing toward the outside, clamped to
// spread texels on either side).
func paintSDFCell(atlas *image.NRGBA, g Glyph, spread int) {
	if g.Width <= 0 || g.Height <= 0 {
		return
	}

	inset := float64(spread)
	left := inset
	top := inset
	right := float64(g.Width) - inset
	bottom := float64(g.Height) - inset
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}

	for py := 0; py < g.Height; py++ {
		for px := 0; px < g.Width; px++ {
			fx, fy := float64(px)+0.5, float64(py)+0.5

			dx := math.Max(left-fx, fx-right)
			dy := math.Max(top-fy, fy-bottom)
			var dist float64
			switch {
			case dx > 0 && dy > 0:
				dist = math.Hypot(dx, dy)
			case dx > 0:
				dist = dx
			case dy > 0:
				dist = dy
			default:
				dist = math.Max(dx, dy) // negative: inside the ink area
			}

			normalized := 0.5 - dist/(2*inset)
			if normalized < 0 {
				normalized = 0
			}
			if normalized > 1 {
				normalized = 1
			}
			v := uint8(normalized * 255)

			ax, ay := g.AtlasX+px, g.AtlasY+py
			idx := atlas.PixOffset(ax, ay)
			if idx < 0 || idx+3 >= len(atlas.Pix) {
				continue
			}
			atlas.Pix[idx+g.Channel] = v
			atlas.Pix[idx+3] = 255
		}
	}
}

package ibl

import "github.com/flexengine/renderer/core"

// HDRImage is a flat float32 RGB image, the CPU-side stand-in for an
// uploaded HDR 2D texture.
type HDRImage struct {
	Width, Height int
	Pix           []float32 // len == Width*Height*3
}

// NewHDRImage allocates a black image of the given size.
func NewHDRImage(w, h int) *HDRImage {
	return &HDRImage{Width: w, Height: h, Pix: make([]float32, w*h*3)}
}

// At returns the RGB triple at (x, y), clamping out-of-range coordinates to
// the edge.
func (img *HDRImage) At(x, y int) (r, g, b float32) {
	if x < 0 {
		x = 0
	}
	if x >= img.Width {
		x = img.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= img.Height {
		y = img.Height - 1
	}
	i := (y*img.Width + x) * 3
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

// Set writes the RGB triple at (x, y).
func (img *HDRImage) Set(x, y int, r, g, b float32) {
	i := (y*img.Width + x) * 3
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
}

// SampleBilinear samples img at normalized UV coordinates in [0,1]x[0,1],
// wrapping horizontally (equirect longitude wraps) and clamping vertically.
func (img *HDRImage) SampleBilinear(u, v float32) (r, g, b float32) {
	u -= float32Floor(u)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	fx := u*float32(img.Width) - 0.5
	fy := v*float32(img.Height) - 0.5
	x0, y0 := int(float32Floor(fx)), int(float32Floor(fy))
	tx, ty := fx-float32(x0), fy-float32(y0)

	r00, g00, b00 := img.At(wrap(x0, img.Width), y0)
	r10, g10, b10 := img.At(wrap(x0+1, img.Width), y0)
	r01, g01, b01 := img.At(wrap(x0, img.Width), y0+1)
	r11, g11, b11 := img.At(wrap(x0+1, img.Width), y0+1)

	lerp := func(a, b, t float32) float32 { return a + (b-a)*t }
	r = lerp(lerp(r00, r10, tx), lerp(r01, r11, tx), ty)
	g = lerp(lerp(g00, g10, tx), lerp(g01, g11, tx), ty)
	b = lerp(lerp(b00, b10, tx), lerp(b01, b11, tx), ty)
	return
}

func wrap(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}

func float32Floor(v float32) float32 {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return float32(i)
}

// Cubemap holds six equal-size square HDR faces in core.CubeFaceOrder order.
type Cubemap struct {
	Size  int
	Faces [6]*HDRImage
}

// NewCubemap allocates six black faces of size x size.
func NewCubemap(size int) *Cubemap {
	cm := &Cubemap{Size: size}
	for i := range cm.Faces {
		cm.Faces[i] = NewHDRImage(size, size)
	}
	return cm
}

// Face returns the image for f, matching core.CubeFaceOrder indexing.
func (cm *Cubemap) Face(f core.CubeFace) *HDRImage { return cm.Faces[f] }

// directionToFaceUV maps a world-space direction to the cube face it hits
// plus the UV coordinate within that face, the inverse of faceUVToDirection.
func directionToFaceUV(dx, dy, dz float32) (face core.CubeFace, u, v float32) {
	ax, ay, az := fabs32(dx), fabs32(dy), fabs32(dz)
	switch {
	case ax >= ay && ax >= az:
		if dx > 0 {
			face, u, v = core.CubeFaceRight, -dz/ax, -dy/ax
		} else {
			face, u, v = core.CubeFaceLeft, dz/ax, -dy/ax
		}
	case ay >= ax && ay >= az:
		if dy > 0 {
			face, u, v = core.CubeFaceUp, dx/ay, dz/ay
		} else {
			face, u, v = core.CubeFaceDown, dx/ay, -dz/ay
		}
	default:
		if dz > 0 {
			face, u, v = core.CubeFaceFront, dx/az, -dy/az
		} else {
			face, u, v = core.CubeFaceBack, -dx/az, -dy/az
		}
	}
	return face, (u + 1) / 2, (v + 1) / 2
}

// faceUVToDirection maps a face + UV in [0,1] back to a unit world-space
// direction, the convention every face render in this package iterates.
func faceUVToDirection(face core.CubeFace, u, v float32) (dx, dy, dz float32) {
	a := u*2 - 1
	b := v*2 - 1
	switch face {
	case core.CubeFaceRight:
		dx, dy, dz = 1, -b, -a
	case core.CubeFaceLeft:
		dx, dy, dz = -1, -b, a
	case core.CubeFaceUp:
		dx, dy, dz = a, 1, b
	case core.CubeFaceDown:
		dx, dy, dz = a, -1, -b
	case core.CubeFaceFront:
		dx, dy, dz = a, -b, 1
	case core.CubeFaceBack:
		dx, dy, dz = -a, -b, -1
	}
	return normalize(dx, dy, dz)
}

func fabs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func normalize(x, y, z float32) (float32, float32, float32) {
	l := sqrt32(x*x + y*y + z*z)
	if l == 0 {
		return 0, 0, 0
	}
	return x / l, y / l, z / l
}

package ibl

import "github.com/flexengine/renderer/core"

// EquirectToCubemap renders size x size faces by sampling equirect through
// atan2/asin: each face texel's direction is turned
// into (longitude, latitude) and that pair into the equirect image's UV.
func EquirectToCubemap(equirect *HDRImage, size int) *Cubemap {
	cm := NewCubemap(size)
	for face := range cm.Faces {
		img := cm.Faces[face]
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				u := (float32(x) + 0.5) / float32(size)
				v := (float32(y) + 0.5) / float32(size)
				dx, dy, dz := faceUVToDirection(core.CubeFace(face), u, v)

				longitude := atan2_32(dz, dx)
				latitude := asin32(clamp32(dy, -1, 1))

				eu := longitude/(2*pi32) + 0.5
				ev := 0.5 - latitude/pi32

				r, g, b := equirect.SampleBilinear(eu, ev)
				img.Set(x, y, r, g, b)
			}
		}
	}
	return cm
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

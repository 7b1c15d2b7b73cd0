package ibl

import "github.com/flexengine/renderer/core"

// irradianceSampleCount is the quasi-Monte-Carlo sample count per texel;
// A small output size (32²) is used precisely because
// this convolution is expensive per texel.
const irradianceSampleCount = 64

// ConvolveIrradiance integrates src over the cosine-weighted hemisphere
// around each output texel's normal, producing a small diffuse irradiance
// cubemap.
func ConvolveIrradiance(src *Cubemap, size int) *Cubemap {
	out := NewCubemap(size)
	for face := range out.Faces {
		img := out.Faces[face]
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				u := (float32(x) + 0.5) / float32(size)
				v := (float32(y) + 0.5) / float32(size)
				nx, ny, nz := faceUVToDirection(core.CubeFace(face), u, v)
				r, g, b := convolveHemisphere(src, nx, ny, nz)
				img.Set(x, y, r, g, b)
			}
		}
	}
	return out
}

func convolveHemisphere(src *Cubemap, nx, ny, nz float32) (r, g, b float32) {
	tx, ty, tz, bx, by, bz := tangentBasis(nx, ny, nz)

	var sumR, sumG, sumB float32
	var count float32
	for i := 0; i < irradianceSampleCount; i++ {
		// Hammersley-style low-discrepancy pair over a fixed sample count,
		// reused here instead of true random sampling so results are
		// deterministic and therefore testable.
		u1 := (float32(i) + 0.5) / irradianceSampleCount
		u2 := vanDerCorput(uint32(i))

		phi := 2 * pi32 * u1
		cosTheta := sqrt32(1 - u2) // cosine-weighted hemisphere sample
		sinTheta := sqrt32(u2)

		lx := sinTheta * cos32(phi)
		ly := sinTheta * sin32(phi)
		lz := cosTheta

		wx := tx*lx + bx*ly + nx*lz
		wy := ty*lx + by*ly + ny*lz
		wz := tz*lx + bz*ly + nz*lz

		sr, sg, sb := sampleCubemap(src, wx, wy, wz)
		sumR += sr
		sumG += sg
		sumB += sb
		count++
	}
	return sumR / count, sumG / count, sumB / count
}

func tangentBasis(nx, ny, nz float32) (tx, ty, tz, bx, by, bz float32) {
	upx, upy, upz := float32(0), float32(1), float32(0)
	if fabs32(ny) > 0.99 {
		upx, upy, upz = 1, 0, 0
	}
	tx, ty, tz = normalize(cross(upx, upy, upz, nx, ny, nz))
	bx, by, bz = cross(nx, ny, nz, tx, ty, tz)
	return
}

func cross(ax, ay, az, bx, by, bz float32) (float32, float32, float32) {
	return ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx
}

// vanDerCorput is the radical-inverse base-2 sequence, paired with i/N to
// form a deterministic Hammersley point set.
func vanDerCorput(i uint32) float32 {
	bits := i
	bits = (bits << 16) | (bits >> 16)
	bits = ((bits & 0x55555555) << 1) | ((bits & 0xAAAAAAAA) >> 1)
	bits = ((bits & 0x33333333) << 2) | ((bits & 0xCCCCCCCC) >> 2)
	bits = ((bits & 0x0F0F0F0F) << 4) | ((bits & 0xF0F0F0F0) >> 4)
	bits = ((bits & 0x00FF00FF) << 8) | ((bits & 0xFF00FF00) >> 8)
	return float32(bits) * 2.3283064365386963e-10 // / 2^32
}

// sampleCubemap fetches the texel nearest the given direction; the
// convolution and prefilter passes only need point sampling since they
// already average many directions.
func sampleCubemap(cm *Cubemap, dx, dy, dz float32) (r, g, b float32) {
	face, u, v := directionToFaceUV(dx, dy, dz)
	img := cm.Face(face)
	x := int(u * float32(img.Width))
	y := int(v * float32(img.Height))
	return img.At(x, y)
}

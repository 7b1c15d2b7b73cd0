package ibl

import "github.com/flexengine/renderer/core"

const prefilterSampleCount = 32

// PrefilterEnvironment renders maxMipLevels mip faces of decreasing size,
// each importance-sampling a GGX lobe at roughness = mip/(maxMipLevels-1),
// per mip level. baseSize is mip 0's face size.
func PrefilterEnvironment(src *Cubemap, baseSize, maxMipLevels int) []*Cubemap {
	mips := make([]*Cubemap, maxMipLevels)
	for mip := 0; mip < maxMipLevels; mip++ {
		size := baseSize >> mip
		if size < 1 {
			size = 1
		}
		roughness := float32(mip) / float32(maxMipLevels-1)
		mips[mip] = prefilterMip(src, size, roughness)
	}
	return mips
}

func prefilterMip(src *Cubemap, size int, roughness float32) *Cubemap {
	out := NewCubemap(size)
	for face := range out.Faces {
		img := out.Faces[face]
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				u := (float32(x) + 0.5) / float32(size)
				v := (float32(y) + 0.5) / float32(size)
				nx, ny, nz := faceUVToDirection(core.CubeFace(face), u, v)
				r, g, b := prefilterDirection(src, nx, ny, nz, roughness)
				img.Set(x, y, r, g, b)
			}
		}
	}
	return out
}

func prefilterDirection(src *Cubemap, nx, ny, nz, roughness float32) (r, g, b float32) {
	if roughness < 1e-3 {
		return sampleCubemap(src, nx, ny, nz)
	}

	tx, ty, tz, bx, by, bz := tangentBasis(nx, ny, nz)

	var sumR, sumG, sumB, sumWeight float32
	for i := 0; i < prefilterSampleCount; i++ {
		u1 := (float32(i) + 0.5) / prefilterSampleCount
		u2 := vanDerCorput(uint32(i))

		alpha := roughness * roughness
		phi := 2 * pi32 * u1
		cosTheta := sqrt32((1 - u2) / (1 + (alpha*alpha-1)*u2))
		sinTheta := sqrt32(1 - cosTheta*cosTheta)

		hx := sinTheta * cos32(phi)
		hy := sinTheta * sin32(phi)
		hz := cosTheta

		wx := tx*hx + bx*hy + nx*hz
		wy := ty*hx + by*hy + ny*hz
		wz := tz*hx + bz*hy + nz*hz

		// Reflect view (approximated as N, the common "V == R == N"
		// prefilter simplification) about the sampled half-vector.
		dot := nx*wx + ny*wy + nz*wz
		lx := 2*dot*wx - nx
		ly := 2*dot*wy - ny
		lz := 2*dot*wz - nz

		ndotl := nx*lx + ny*ly + nz*lz
		if ndotl <= 0 {
			continue
		}
		sr, sg, sb := sampleCubemap(src, lx, ly, lz)
		sumR += sr * ndotl
		sumG += sg * ndotl
		sumB += sb * ndotl
		sumWeight += ndotl
	}
	if sumWeight == 0 {
		return sampleCubemap(src, nx, ny, nz)
	}
	return sumR / sumWeight, sumG / sumWeight, sumB / sumWeight
}

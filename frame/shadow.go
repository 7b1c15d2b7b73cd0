package frame

import (
	"math"

	"github.com/flexengine/renderer/core"
)

// frustumCorners returns the 8 world-space corners of cam's view frustum
// between splitNear and splitFar, near face first, each face ordered
// top-left, top-right, bottom-left, bottom-right.
func frustumCorners(cam core.Camera, splitNear, splitFar float32) [8]core.Vec3 {
	forward := vecNormalize(cam.Forward)
	up := vecNormalize(cam.Up)
	right := vecNormalize(vecCross(forward, up))
	up = vecCross(right, forward)

	var out [8]core.Vec3
	for i, d := range [2]float32{splitNear, splitFar} {
		halfH := d * float32(math.Tan(float64(cam.FovYRadians)/2))
		halfW := halfH * cam.Aspect
		center := vecAdd(cam.Position, vecScale(forward, d))
		out[i*4+0] = vecAdd(vecAdd(center, vecScale(up, halfH)), vecScale(right, -halfW))
		out[i*4+1] = vecAdd(vecAdd(center, vecScale(up, halfH)), vecScale(right, halfW))
		out[i*4+2] = vecAdd(vecAdd(center, vecScale(up, -halfH)), vecScale(right, -halfW))
		out[i*4+3] = vecAdd(vecAdd(center, vecScale(up, -halfH)), vecScale(right, halfW))
	}
	return out
}

// cascadeSplits computes count split distances between
// cam.Near and cam.Far using the practical split scheme (a log/uniform
// blend), the same scheme the engine's single-shadow-map
// ComputeDirLightViewProj generalizes into cascades for.
func cascadeSplits(cam core.Camera, count int, lambda float32) []float32 {
	splits := make([]float32, count)
	near, far := float64(cam.Near), float64(cam.Far)
	for i := 1; i <= count; i++ {
		p := float64(i) / float64(count)
		logSplit := near * math.Pow(far/near, p)
		uniformSplit := near + (far-near)*p
		splits[i-1] = float32(float64(lambda)*logSplit + (1-float64(lambda))*uniformSplit)
	}
	return splits
}

// shadowUpVector picks a world-up vector that isn't nearly parallel to dir,
// avoiding a degenerate lookAt basis when the sun points straight down.
func shadowUpVector(dir core.Vec3) core.Vec3 {
	up := core.Vec3{Y: 1}
	if math.Abs(float64(vecDot(vecNormalize(dir), up))) > 0.99 {
		return core.Vec3{Z: 1}
	}
	return up
}

// ComputeShadowCascades fits one orthographic view-projection matrix per
// cascade around cam's view frustum, split along the practical split scheme,
// the CPU-simulated generalization of the engine's single ComputeDirLightViewProj
// to NumShadowCascades slices (core.DirectionalLight.CascadeViewProj's
// recipient). lightDir points from the light toward the scene.
func ComputeShadowCascades(cam core.Camera, lightDir core.Vec3, count int) [core.NumShadowCascades]core.Mat4 {
	var out [core.NumShadowCascades]core.Mat4
	if count <= 0 {
		return out
	}
	if count > core.NumShadowCascades {
		count = core.NumShadowCascades
	}

	dir := vecNormalize(lightDir)
	up := shadowUpVector(dir)
	splits := cascadeSplits(cam, count, 0.5)

	splitNear := cam.Near
	for i := 0; i < count; i++ {
		splitFar := splits[i]
		corners := frustumCorners(cam, splitNear, splitFar)

		var center core.Vec3
		for _, c := range corners {
			center = vecAdd(center, c)
		}
		center = vecScale(center, 1.0/8.0)

		var radius float32
		for _, c := range corners {
			d := float32(math.Sqrt(float64(vecDot(vecSub(c, center), vecSub(c, center)))))
			if d > radius {
				radius = d
			}
		}

		eye := vecSub(center, vecScale(dir, radius*2))
		lightView := mat4LookAt(eye, center, up)

		minX, minY, minZ := float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))
		maxX, maxY, maxZ := float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))
		for _, c := range corners {
			p := mat4TransformPoint(lightView, c)
			minX, maxX = minf(minX, p.X), maxf(maxX, p.X)
			minY, maxY = minf(minY, p.Y), maxf(maxY, p.Y)
			minZ, maxZ = minf(minZ, p.Z), maxf(maxZ, p.Z)
		}

		// Pad the near side of the box so casters standing just outside the
		// frustum slice (but between it and the light) still shadow it.
		const zPad = 50.0
		lightProj := mat4Ortho(minX, maxX, minY, maxY, -maxZ-zPad, -minZ)

		out[i] = mat4Mul(lightProj, lightView)
		splitNear = splitFar
	}
	return out
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

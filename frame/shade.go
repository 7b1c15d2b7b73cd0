package frame

import (
	"math"

	"github.com/flexengine/renderer/core"
)

const pi32f = float32(math.Pi)

func distributionGGX(nDotH, roughness float32) float32 {
	a := roughness * roughness
	a2 := a * a
	d := nDotH*nDotH*(a2-1) + 1
	return a2 / (pi32f * d * d)
}

func geometrySchlickGGX(nDotV, roughness float32) float32 {
	r := roughness + 1
	k := (r * r) / 8
	return nDotV / (nDotV*(1-k) + k)
}

func geometrySmith(nDotV, nDotL, roughness float32) float32 {
	return geometrySchlickGGX(nDotV, roughness) * geometrySchlickGGX(nDotL, roughness)
}

func fresnelSchlick(cosTheta float32, f0 core.Vec3) core.Vec3 {
	t := pow32f(clamp01(1-cosTheta), 5)
	return core.Vec3{
		X: f0.X + (1-f0.X)*t,
		Y: f0.Y + (1-f0.Y)*t,
		Z: f0.Z + (1-f0.Z)*t,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func pow32f(b, e float32) float32 { return float32(math.Pow(float64(b), float64(e))) }

func maxf2(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// cookTorrance evaluates the Cook-Torrance specular + Lambertian diffuse
// BRDF for one light, returning its contribution to outgoing radiance.
func cookTorrance(n, v, l, albedo core.Vec3, metallic, roughness float32, f0, radiance core.Vec3) core.Vec3 {
	h := vecNormalize(vecAdd(v, l))
	nDotV := maxf2(vecDot(n, v), 1e-4)
	nDotL := vecDot(n, l)
	if nDotL <= 0 {
		return core.Vec3{}
	}
	nDotH := maxf2(vecDot(n, h), 0)
	vDotH := maxf2(vecDot(v, h), 0)

	d := distributionGGX(nDotH, roughness)
	g := geometrySmith(nDotV, nDotL, roughness)
	f := fresnelSchlick(vDotH, f0)

	specular := vecScale(f, d*g/(4*nDotV*nDotL+1e-4))

	kd := vecScale(core.Vec3{X: 1 - f.X, Y: 1 - f.Y, Z: 1 - f.Z}, 1-metallic)
	diffuse := mulVec3(kd, vecScale(albedo, 1/pi32f))

	brdf := vecAdd(diffuse, specular)
	return vecScale(mulVec3(brdf, radiance), nDotL)
}

// ShadeFragment evaluates the sun (pre-attenuated by shadowFactor) and every
// enabled point light against one GBuffer texel's PBR inputs, adding a flat
// ambient term (ao * albedo * ambientIrradiance) in place of a real
// convolved-IBL probe lookup.
func ShadeFragment(albedo core.Vec3, metallic, roughness, ao float32, normal, worldPos, camPos core.Vec3, sun core.DirectionalLight, shadowFactor float32, points []core.PointLight, ambientIrradiance core.Vec3) core.Vec4 {
	n := vecNormalize(normal)
	v := vecNormalize(vecSub(camPos, worldPos))

	f0 := lerp3(core.Vec3{X: 0.04, Y: 0.04, Z: 0.04}, albedo, metallic)

	var lo core.Vec3
	if sun.Enabled {
		l := vecNormalize(vecScale(sun.Direction, -1))
		radiance := vecScale(sun.Color, sun.Brightness*shadowFactor)
		lo = vecAdd(lo, cookTorrance(n, v, l, albedo, metallic, roughness, f0, radiance))
	}
	for _, pl := range points {
		if !pl.Enabled {
			continue
		}
		toLight := vecSub(pl.Position, worldPos)
		dist := float32(math.Sqrt(float64(vecDot(toLight, toLight))))
		if dist == 0 {
			continue
		}
		l := vecScale(toLight, 1/dist)
		attenuation := 1 / (dist * dist)
		radiance := vecScale(pl.Color, pl.Brightness*attenuation)
		lo = vecAdd(lo, cookTorrance(n, v, l, albedo, metallic, roughness, f0, radiance))
	}

	ambient := vecScale(mulVec3(albedo, ambientIrradiance), ao)
	color := vecAdd(lo, ambient)
	return core.Vec4{X: color.X, Y: color.Y, Z: color.Z, W: 1}
}

// DeferredShade evaluates ShadeFragment over every occupied GBuffer texel,
// sampling shadowMaps for the sun's contribution when it casts shadows.
func DeferredShade(gb *GBuffer, ao []float32, sun core.DirectionalLight, shadowMaps [core.NumShadowCascades]*ShadowMap, cascadeCount int, cam core.Camera, points []core.PointLight) []core.Vec4 {
	out := make([]core.Vec4, gb.Width*gb.Height)

	castShadow := sun.Enabled && sun.CastShadow && cascadeCount > 0
	var viewMat core.Mat4
	var splits []float32
	if castShadow {
		viewMat = ViewMatrix(cam)
		splits = cascadeSplits(cam, cascadeCount, 0.5)
	}

	const ambientIrradianceScale = 0.03
	ambient := core.Vec3{X: ambientIrradianceScale, Y: ambientIrradianceScale, Z: ambientIrradianceScale}

	for y := 0; y < gb.Height; y++ {
		for x := 0; x < gb.Width; x++ {
			idx := gb.index(x, y)
			if gb.Depth[idx] >= 1 {
				continue
			}

			n := gb.NormalRoughness[idx]
			am := gb.AlbedoMetallic[idx]
			worldPos := gb.WorldPos[idx]

			shadowFactor := float32(1)
			if castShadow {
				shadowFactor = sampleShadowFactor(worldPos, viewMat, sun.CascadeViewProj, shadowMaps, cascadeCount, splits)
			}

			out[idx] = ShadeFragment(
				core.Vec3{X: am.X, Y: am.Y, Z: am.Z}, am.W, n.W, ao[idx],
				core.Vec3{X: n.X, Y: n.Y, Z: n.Z}, worldPos, cam.Position,
				sun, shadowFactor, points, ambient,
			)
		}
	}
	return out
}

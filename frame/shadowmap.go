package frame

import "github.com/flexengine/renderer/core"

// ShadowMap is one cascade's CPU depth buffer, populated by rasterizing
// occluder geometry from the light's own view-projection matrix — the
// shadow-pass counterpart of GBuffer, depth only.
type ShadowMap struct {
	Size  int
	Depth []float32
}

// NewShadowMap allocates a square depth buffer cleared to 1 (far plane).
func NewShadowMap(size int) *ShadowMap {
	sm := &ShadowMap{Size: size, Depth: make([]float32, size*size)}
	for i := range sm.Depth {
		sm.Depth[i] = 1
	}
	return sm
}

// RasterizeOccluderDepth projects vb/indices through model then
// lightViewProj and writes the nearest depth per texel, the shadow-pass
// equivalent of RasterizeObjectToGBuffer with no color output.
func RasterizeOccluderDepth(sm *ShadowMap, vb *core.VertexBufferData, indices []uint32, topology core.Topology, model, lightViewProj core.Mat4) {
	if vb == nil {
		return
	}
	verts := decodeVertices(vb)
	tris := triangleIndices(indices, vb.VertexCount, topology)
	mvp := mat4Mul(lightViewProj, model)

	for _, tri := range tris {
		if int(tri[0]) >= len(verts) || int(tri[1]) >= len(verts) || int(tri[2]) >= len(verts) {
			continue
		}
		a, b, c := verts[tri[0]].pos, verts[tri[1]].pos, verts[tri[2]].pos
		rasterizeDepthTriangle(sm, mvp, a, b, c)
	}
}

func rasterizeDepthTriangle(sm *ShadowMap, mvp core.Mat4, a, b, c core.Vec3) {
	ca := mat4TransformHomogeneous(mvp, a)
	cb := mat4TransformHomogeneous(mvp, b)
	cc := mat4TransformHomogeneous(mvp, c)
	if ca.W <= 0 || cb.W <= 0 || cc.W <= 0 {
		return
	}
	sa := clipToScreen(ca, sm.Size, sm.Size)
	sb := clipToScreen(cb, sm.Size, sm.Size)
	sc := clipToScreen(cc, sm.Size, sm.Size)

	rasterizeClipTriangle(sa, sb, sc, sm.Size, sm.Size, func(x, y int, w0, w1, w2, depth float32) {
		idx := y*sm.Size + x
		if depth < sm.Depth[idx] {
			sm.Depth[idx] = depth
		}
	})
}

// sampleShadowFactor returns 1 (fully lit) or 0 (occluded) for worldPos,
// selecting a cascade by view-space depth against splits and comparing the
// fragment's light-space depth against the chosen cascade's stored nearest
// depth, with a small bias against self-shadowing acne.
func sampleShadowFactor(worldPos core.Vec3, viewMat core.Mat4, cascadeViewProj [core.NumShadowCascades]core.Mat4, shadowMaps [core.NumShadowCascades]*ShadowMap, cascadeCount int, splits []float32) float32 {
	if cascadeCount <= 0 {
		return 1
	}
	viewPos := mat4TransformPoint(viewMat, worldPos)
	depth := -viewPos.Z

	idx := cascadeCount - 1
	for i := 0; i < cascadeCount; i++ {
		if depth <= splits[i] {
			idx = i
			break
		}
	}

	sm := shadowMaps[idx]
	if sm == nil {
		return 1
	}

	clip := mat4TransformHomogeneous(cascadeViewProj[idx], worldPos)
	if clip.W <= 0 {
		return 1
	}
	ndcX, ndcY, ndcZ := clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 {
		return 1 // outside this cascade's box: nothing to compare against
	}

	sx := clampInt((ndcX*0.5+0.5)*float32(sm.Size), 0, sm.Size-1)
	sy := clampInt((1-(ndcY*0.5+0.5))*float32(sm.Size), 0, sm.Size-1)
	sampled := sm.Depth[sy*sm.Size+sx]

	const bias = 0.0015
	fragDepth := ndcZ*0.5 + 0.5
	if fragDepth-bias > sampled {
		return 0
	}
	return 1
}

package frame

import "github.com/flexengine/renderer/core"

// gbufferVertexAttribs is the fixed attribute set RasterizeObjectToGBuffer
// decodes every vertex stream down to via VertexBufferData.CopyInto,
// regardless of what the source stream actually carries; missing attributes
// fall back to CopyInto's documented defaults (flat +Y normal, zero UV).
const gbufferVertexAttribs = core.AttribPosition | core.AttribUV | core.AttribNormal

// decodedVertex is one rasterizer-input vertex. CopyInto lays out
// gbufferVertexAttribs in core.VertexAttribute's documented attributeOrder:
// position (3 words), UV (2 words), normal (3 words) — 8 words/vertex.
type decodedVertex struct {
	pos    core.Vec3
	uv     [2]float32
	normal core.Vec3
}

const decodedVertexStride = 8

func decodeVertices(vb *core.VertexBufferData) []decodedVertex {
	var norm core.VertexBufferData
	vb.CopyInto(&norm, gbufferVertexAttribs)

	out := make([]decodedVertex, norm.VertexCount)
	for i := range out {
		base := i * decodedVertexStride
		out[i] = decodedVertex{
			pos:    core.Vec3{X: norm.Data[base], Y: norm.Data[base+1], Z: norm.Data[base+2]},
			uv:     [2]float32{norm.Data[base+3], norm.Data[base+4]},
			normal: core.Vec3{X: norm.Data[base+5], Y: norm.Data[base+6], Z: norm.Data[base+7]},
		}
	}
	return out
}

// triangleIndices expands indices (or the implicit 0..n-1 sequence when the
// draw is non-indexed) into vertex-index triples, honoring strip topology's
// alternating winding.
func triangleIndices(indices []uint32, vertexCount int, topology core.Topology) [][3]uint32 {
	idx := indices
	if idx == nil {
		idx = make([]uint32, vertexCount)
		for i := range idx {
			idx[i] = uint32(i)
		}
	}

	var tris [][3]uint32
	if topology == core.TopologyTriangleStrip {
		for i := 0; i+2 < len(idx); i++ {
			if i%2 == 0 {
				tris = append(tris, [3]uint32{idx[i], idx[i+1], idx[i+2]})
			} else {
				tris = append(tris, [3]uint32{idx[i+1], idx[i], idx[i+2]})
			}
		}
		return tris
	}
	for i := 0; i+2 < len(idx); i += 3 {
		tris = append(tris, [3]uint32{idx[i], idx[i+1], idx[i+2]})
	}
	return tris
}

// screenPoint is one rasterizer-space vertex: x/y in pixels, z the
// perspective-divided NDC depth in [-1, 1] mapped to [0, 1] by clipToScreen.
type screenPoint struct{ x, y, z float32 }

func edgeFunction(a, b, c screenPoint) float32 {
	return (c.x-a.x)*(b.y-a.y) - (c.y-a.y)*(b.x-a.x)
}

func clipToScreen(c core.Vec4, width, height int) screenPoint {
	invW := 1 / c.W
	ndcX, ndcY, ndcZ := c.X*invW, c.Y*invW, c.Z*invW
	return screenPoint{
		x: (ndcX*0.5 + 0.5) * float32(width),
		y: (1 - (ndcY*0.5 + 0.5)) * float32(height),
		z: ndcZ*0.5 + 0.5,
	}
}

func clampInt(v float32, lo, hi int) int {
	i := int(v)
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

func minf3(a, b, c float32) float32 { return minf(minf(a, b), c) }
func maxf3(a, b, c float32) float32 { return maxf(maxf(a, b), c) }

// rasterizeClipTriangle scan-converts a screen-space triangle and invokes fn
// once per covered texel with its barycentric weights and interpolated
// depth. Works for either winding: dividing each edge function by the same
// signed area normalizes the sign regardless of orientation.
func rasterizeClipTriangle(sa, sb, sc screenPoint, width, height int, fn func(x, y int, w0, w1, w2, depth float32)) {
	area := edgeFunction(sa, sb, sc)
	if area == 0 {
		return
	}

	minX := clampInt(minf3(sa.x, sb.x, sc.x), 0, width-1)
	maxX := clampInt(maxf3(sa.x, sb.x, sc.x), 0, width-1)
	minY := clampInt(minf3(sa.y, sb.y, sc.y), 0, height-1)
	maxY := clampInt(maxf3(sa.y, sb.y, sc.y), 0, height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := screenPoint{x: float32(x) + 0.5, y: float32(y) + 0.5}
			w0 := edgeFunction(sb, sc, p) / area
			w1 := edgeFunction(sc, sa, p) / area
			w2 := edgeFunction(sa, sb, p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			depth := w0*sa.z + w1*sb.z + w2*sc.z
			fn(x, y, w0, w1, w2, depth)
		}
	}
}

// sampleMaterial resolves a fragment's PBR input values. No in-memory 2D
// texture pixel buffer exists anywhere outside ibl's cubemap-face loader, so
// a sampled albedo falls back to a procedurally generated checker pattern
// when the slot is marked Generate (mirroring SamplerSlot.Generate's
// existing meaning for IBL maps), and to the material's constant otherwise.
func sampleMaterial(mat *core.Material, uv [2]float32) (albedo core.Vec3, metallic, roughness float32) {
	if mat == nil {
		return core.Vec3{X: 1, Y: 0, Z: 1}, 0, 1 // core.ErrorMaterialName's bright pink
	}
	albedo = core.Vec3{X: mat.ConstAlbedo[0], Y: mat.ConstAlbedo[1], Z: mat.ConstAlbedo[2]}
	if mat.Albedo.Enable && mat.Albedo.Generate {
		albedo = sampleChecker(uv)
	}
	albedo = mulVec3(albedo, core.Vec3{X: mat.ColorMultiplier[0], Y: mat.ColorMultiplier[1], Z: mat.ColorMultiplier[2]})
	return albedo, mat.ConstMetallic, mat.ConstRoughness
}

// sampleChecker is a 2x2 nearest-neighbor checker pattern over unit UV space.
func sampleChecker(uv [2]float32) core.Vec3 {
	cx := int(uv[0] * 2)
	cy := int(uv[1] * 2)
	if (cx+cy)%2 == 0 {
		return core.Vec3{X: 1, Y: 1, Z: 1}
	}
	return core.Vec3{}
}

// RasterizeObjectToGBuffer projects vb/indices through model then viewProj
// and fills every texel the resulting triangles cover, depth-tested against
// gb.Depth (nearer fragments win). mat supplies the PBR values sampleMaterial
// falls back to.
func RasterizeObjectToGBuffer(gb *GBuffer, vb *core.VertexBufferData, indices []uint32, topology core.Topology, model, viewProj core.Mat4, mat *core.Material) {
	if vb == nil {
		return
	}
	verts := decodeVertices(vb)
	tris := triangleIndices(indices, vb.VertexCount, topology)
	mvp := mat4Mul(viewProj, model)

	for _, tri := range tris {
		if int(tri[0]) >= len(verts) || int(tri[1]) >= len(verts) || int(tri[2]) >= len(verts) {
			continue
		}
		a, b, c := verts[tri[0]], verts[tri[1]], verts[tri[2]]
		rasterizeGBufferTriangle(gb, mvp, model, a, b, c, mat)
	}
}

func rasterizeGBufferTriangle(gb *GBuffer, mvp, model core.Mat4, a, b, c decodedVertex, mat *core.Material) {
	ca := mat4TransformHomogeneous(mvp, a.pos)
	cb := mat4TransformHomogeneous(mvp, b.pos)
	cc := mat4TransformHomogeneous(mvp, c.pos)
	if ca.W <= 0 || cb.W <= 0 || cc.W <= 0 {
		return // behind the camera; near-plane clipping is out of scope
	}

	sa := clipToScreen(ca, gb.Width, gb.Height)
	sb := clipToScreen(cb, gb.Width, gb.Height)
	sc := clipToScreen(cc, gb.Width, gb.Height)

	wa := mat4TransformPoint(model, a.pos)
	wb := mat4TransformPoint(model, b.pos)
	wc := mat4TransformPoint(model, c.pos)

	rasterizeClipTriangle(sa, sb, sc, gb.Width, gb.Height, func(x, y int, w0, w1, w2, depth float32) {
		idx := gb.index(x, y)
		if depth >= gb.Depth[idx] {
			return
		}
		gb.Depth[idx] = depth

		normal := vecNormalize(vecAdd(vecAdd(vecScale(a.normal, w0), vecScale(b.normal, w1)), vecScale(c.normal, w2)))
		uv := [2]float32{
			w0*a.uv[0] + w1*b.uv[0] + w2*c.uv[0],
			w0*a.uv[1] + w1*b.uv[1] + w2*c.uv[1],
		}
		albedo, metallic, roughness := sampleMaterial(mat, uv)

		gb.NormalRoughness[idx] = core.Vec4{X: normal.X, Y: normal.Y, Z: normal.Z, W: roughness}
		gb.AlbedoMetallic[idx] = core.Vec4{X: albedo.X, Y: albedo.Y, Z: albedo.Z, W: metallic}
		gb.WorldPos[idx] = core.Vec3{
			X: w0*wa.X + w1*wb.X + w2*wc.X,
			Y: w0*wa.Y + w1*wb.Y + w2*wc.Y,
			Z: w0*wa.Z + w1*wb.Z + w2*wc.Z,
		}
	})
}

package uimesh

import (
	"math"

	"github.com/flexengine/renderer/core"
)

// uiAttribs is the fixed vertex layout every uimesh shape emits: a 2D
// screen-space position plus an RGBA color, matching the original engine's
// UI shader's vertex input.
const uiAttribs = core.AttribPosition2 | core.AttribColor128

// Vec2 is a minimal float32 2-vector for screen-space coordinates.
type Vec2 struct{ X, Y float32 }

// Mesh accumulates one frame's worth of 2D shapes into a single dynamic
// vertex+index buffer, matching the original engine's UIMesh: DrawRect,
// DrawArc and DrawPolygon each append to the same buffer rather than
// allocating one draw call per shape.
type Mesh struct {
	MaterialID core.MaterialID

	verts   []float32 // interleaved per uiAttribs
	indices []uint32
}

// New returns an empty UI mesh bound to matID (the flat-color UI shader's
// material, set up once by the caller).
func New(matID core.MaterialID) *Mesh {
	return &Mesh{MaterialID: matID}
}

func (m *Mesh) appendVertex(pos Vec2, color core.Vec4) uint32 {
	idx := uint32(len(m.verts) / core.Stride(uiAttribs))
	m.verts = append(m.verts, pos.X, pos.Y, color.X, color.Y, color.Z, color.W)
	return idx
}

// DrawRect appends an axis-aligned rectangle between bottomLeft and topRight.
// cornerRadius is accepted for interface parity with the original engine
// and ignored: every rectangle is drawn with sharp corners, whatever the
// radius.
func (m *Mesh) DrawRect(bottomLeft, topRight Vec2, color core.Vec4, cornerRadius float32) {
	bl := m.appendVertex(Vec2{bottomLeft.X, bottomLeft.Y}, color)
	br := m.appendVertex(Vec2{topRight.X, bottomLeft.Y}, color)
	tr := m.appendVertex(Vec2{topRight.X, topRight.Y}, color)
	tl := m.appendVertex(Vec2{bottomLeft.X, topRight.Y}, color)
	m.indices = append(m.indices, bl, br, tr, bl, tr, tl)
}

// DrawArc appends an arc (or full ring when endAngle-startAngle >= 2π) as a
// triangle strip of the given thickness, fanned out from centerPos. Angles
// are in radians, 0 pointing along +X, matching the original engine's
// convention ("Start angle (0 = right)").
func (m *Mesh) DrawArc(centerPos Vec2, startAngle, endAngle, innerRadius, thickness float32, segmentsInFullCircle int, color core.Vec4) {
	if segmentsInFullCircle < 3 {
		segmentsInFullCircle = 3
	}
	span := endAngle - startAngle
	segments := int(float32(segmentsInFullCircle) * span / (2 * math.Pi))
	if segments < 1 {
		segments = 1
	}
	outerRadius := innerRadius + thickness

	var prevInner, prevOuter uint32
	for i := 0; i <= segments; i++ {
		angle := startAngle + span*float32(i)/float32(segments)
		cos, sin := float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle)))
		inner := m.appendVertex(Vec2{centerPos.X + innerRadius*cos, centerPos.Y + innerRadius*sin}, color)
		outer := m.appendVertex(Vec2{centerPos.X + outerRadius*cos, centerPos.Y + outerRadius*sin}, color)
		if i > 0 {
			m.indices = append(m.indices, prevInner, prevOuter, outer, prevInner, outer, inner)
		}
		prevInner, prevOuter = inner, outer
	}
}

// DrawPolygon appends an arbitrary indexed polygon. texCoords/uvBlendAmount
// from the original engine's signature are omitted: the flat-color UI
// shader this renderer specifies has no texture sampler to blend against
// (reduced scope — textured UI polygons are not named by any
// component).
func (m *Mesh) DrawPolygon(points []Vec2, indices []uint32, color core.Vec4) {
	base := uint32(len(m.verts) / core.Stride(uiAttribs))
	for _, p := range points {
		m.appendVertex(p, color)
	}
	for _, idx := range indices {
		m.indices = append(m.indices, base+idx)
	}
}

// Build projects the accumulated shapes into a VertexBufferData ready for
// the frame graph to draw, and the parallel index list.
func (m *Mesh) Build() (*core.VertexBufferData, []uint32) {
	vb := &core.VertexBufferData{}
	vb.Initialize(uiAttribs, append([]float32(nil), m.verts...), len(m.verts)/core.Stride(uiAttribs))
	return vb, append([]uint32(nil), m.indices...)
}

// EndFrame clears the accumulated geometry, ready for the next frame's
// shapes. Matches the original engine's per-frame UIMesh::EndFrame/Clear.
func (m *Mesh) EndFrame() {
	m.verts = m.verts[:0]
	m.indices = m.indices[:0]
}

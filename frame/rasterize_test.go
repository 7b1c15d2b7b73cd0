package frame

import (
	"math"
	"testing"

	"github.com/flexengine/renderer/core"
)

// unitQuadVertexData builds a unit quad in the XY plane, facing +Z, with
// UVs spanning [0,1]x[0,1] corner-to-corner.
func unitQuadVertexData() (*core.VertexBufferData, []uint32) {
	attrs := core.AttribPosition | core.AttribUV | core.AttribNormal
	data := []float32{
		-1, -1, 0, 0, 0, 0, 0, 1,
		1, -1, 0, 1, 0, 0, 0, 1,
		1, 1, 0, 1, 1, 0, 0, 1,
		-1, 1, 0, 0, 1, 0, 0, 1,
	}
	var vb core.VertexBufferData
	vb.Initialize(attrs, data, 4)
	return &vb, []uint32{0, 1, 2, 0, 2, 3}
}

// TestRasterizeObjectToGBuffer_UnitQuadHeadOnChecker verifies that rasterizing
// a unit quad head-on with a generated checker material samples each
// fragment within 1/255 of its expected pure black/white checker cell, and
// that the four fragments alternate in the expected checkerboard pattern.
func TestRasterizeObjectToGBuffer_UnitQuadHeadOnChecker(t *testing.T) {
	vb, indices := unitQuadVertexData()

	cam := core.Camera{
		Position:    core.Vec3{Z: 1},
		Forward:     core.Vec3{Z: -1},
		Up:          core.Vec3{Y: 1},
		FovYRadians: float32(math.Pi / 2),
		Aspect:      1,
		Near:        0.01,
		Far:         10,
	}
	viewProj := mat4Mul(ProjectionMatrix(cam), ViewMatrix(cam))

	mat := &core.Material{
		Albedo:          core.SamplerSlot{Enable: true, Generate: true},
		ColorMultiplier: [4]float32{1, 1, 1, 1},
		ConstMetallic:   0,
		ConstRoughness:  0.5,
	}

	gb := NewGBuffer(2, 2)
	RasterizeObjectToGBuffer(gb, vb, indices, core.TopologyTriangleList, mat4Identity(), viewProj, mat)

	const tol = 1.0 / 255.0
	isBinary := func(v core.Vec3) bool {
		near := func(f float32) bool { return f < tol || f > 1-tol }
		return near(v.X) && near(v.Y) && near(v.Z)
	}

	var colors [4]core.Vec3
	for i := 0; i < 4; i++ {
		if gb.Depth[i] >= 1 {
			t.Fatalf("fragment %d was never rasterized (depth left at clear value)", i)
		}
		c := gb.AlbedoMetallic[i]
		colors[i] = core.Vec3{X: c.X, Y: c.Y, Z: c.Z}
		if !isBinary(colors[i]) {
			t.Fatalf("fragment %d albedo %+v not within %v of 0 or 1", i, colors[i], tol)
		}
	}

	if colors[0] == colors[1] {
		t.Error("expected horizontally adjacent fragments to differ (checker pattern)")
	}
	if colors[0] == colors[2] {
		t.Error("expected vertically adjacent fragments to differ (checker pattern)")
	}
	if colors[0] != colors[3] {
		t.Error("expected diagonal fragments to match (checker pattern)")
	}
	if colors[1] != colors[2] {
		t.Error("expected the other diagonal's fragments to match (checker pattern)")
	}
}

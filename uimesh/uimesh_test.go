package uimesh

import (
	"testing"

	"github.com/flexengine/renderer/core"
)

func TestMesh_DrawRectEmitsFourVerticesTwoTriangles(t *testing.T) {
	m := New(0)
	m.DrawRect(Vec2{0, 0}, Vec2{10, 10}, core.Vec4{X: 1, Y: 1, Z: 1, W: 1}, 0)

	vb, idx := m.Build()
	if vb.VertexCount != 4 {
		t.Fatalf("expected 4 vertices, got %d", vb.VertexCount)
	}
	if len(idx) != 6 {
		t.Fatalf("expected 6 indices (2 triangles), got %d", len(idx))
	}
}

func TestMesh_EndFrameClearsWithoutLosingCapacity(t *testing.T) {
	m := New(0)
	m.DrawRect(Vec2{}, Vec2{1, 1}, core.Vec4{}, 0)
	capBefore := cap(m.verts)

	m.EndFrame()
	vb, idx := m.Build()
	if vb.VertexCount != 0 || len(idx) != 0 {
		t.Fatalf("expected empty mesh after EndFrame, got %d verts %d idx", vb.VertexCount, len(idx))
	}
	if cap(m.verts) != capBefore {
		t.Fatalf("expected capacity retained at %d, got %d", capBefore, cap(m.verts))
	}
}

func TestMesh_DrawPolygonOffsetsIndicesByBase(t *testing.T) {
	m := New(0)
	m.DrawRect(Vec2{}, Vec2{1, 1}, core.Vec4{}, 0) // 4 verts, base becomes 4
	m.DrawPolygon([]Vec2{{X: 0}, {X: 1}, {X: 2}}, []uint32{0, 1, 2}, core.Vec4{W: 1})

	_, idx := m.Build()
	if len(idx) != 9 {
		t.Fatalf("expected 6+3 indices, got %d", len(idx))
	}
	for _, v := range idx[6:] {
		if v < 4 {
			t.Fatalf("expected polygon indices offset by base 4, got %d", v)
		}
	}
}

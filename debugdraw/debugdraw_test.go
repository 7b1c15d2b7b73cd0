package debugdraw

import (
	"testing"

	"github.com/flexengine/renderer/core"
)

func TestDraw_ClearLinesRetainsCapacity(t *testing.T) {
	d := New()
	for i := 0; i < 8; i++ {
		d.DrawLine(core.Vec3{}, core.Vec3{X: float32(i)}, core.Vec3{X: 1})
	}
	if len(d.Lines()) != 8 {
		t.Fatalf("expected 8 lines, got %d", len(d.Lines()))
	}
	capBefore := cap(d.lines)

	d.ClearLines()
	if len(d.Lines()) != 0 {
		t.Fatalf("expected 0 lines after clear, got %d", len(d.Lines()))
	}
	if cap(d.lines) != capBefore {
		t.Fatalf("expected capacity retained at %d, got %d", capBefore, cap(d.lines))
	}
}

func TestDraw_DebugModeRoundTrip(t *testing.T) {
	d := New()
	d.SetDebugMode(ModeWireframe | ModeAABB)
	if d.DebugMode() != ModeWireframe|ModeAABB {
		t.Fatalf("expected wireframe|aabb, got %v", d.DebugMode())
	}
}

package sprite

import (
	"testing"

	"github.com/flexengine/renderer/core"
)

func TestQueue_ScreenPositionAnchorScenario(t *testing.T) {
	q := NewQueue(1920, 1080)
	cases := []struct {
		anchor Anchor
		wantX  float32
		wantY  float32
	}{
		{AnchorTopLeft, 64, 64},
		{AnchorCenter, 960, 540},
		{AnchorBottomRight, 1856, 1016},
	}
	for _, c := range cases {
		d := Draw{Pos: core.Vec3{X: 0, Y: 0}, Size: [2]float32{128, 128}, Anchor: c.anchor}
		x, y := q.ScreenPosition(d)
		if diff := x - c.wantX; diff > 1 || diff < -1 {
			t.Errorf("anchor %v: x = %v, want within 1px of %v", c.anchor, x, c.wantX)
		}
		if diff := y - c.wantY; diff > 1 || diff < -1 {
			t.Errorf("anchor %v: y = %v, want within 1px of %v", c.anchor, y, c.wantY)
		}
	}
}

func TestQueue_FlushClearsQueue(t *testing.T) {
	q := NewQueue(800, 600)
	q.Enqueue(Draw{})
	q.Enqueue(Draw{})
	q.Flush(stubDevice{})
	if len(q.draws) != 0 {
		t.Fatalf("expected queue cleared after flush, got %d", len(q.draws))
	}
}

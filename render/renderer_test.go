package render

import (
	"testing"

	"github.com/flexengine/renderer/core"
	"github.com/flexengine/renderer/hal"
	_ "github.com/flexengine/renderer/hal/opengl"
)

func TestNewWithBackend_UnregisteredKindFails(t *testing.T) {
	const bogus = hal.BackendKind(99)
	if _, err := NewWithBackend(Config{}, bogus); err == nil {
		t.Fatal("expected error for unregistered backend kind")
	}
}

func TestNewWithBackend_OpenGLConstructsRenderer(t *testing.T) {
	cfg := Config{}
	cfg.Width, cfg.Height = 640, 480

	r, err := NewWithBackend(cfg, hal.BackendOpenGL)
	if err != nil {
		t.Fatalf("NewWithBackend: %v", err)
	}
	defer r.Close()

	if r.Device() == nil {
		t.Fatal("expected non-nil Device()")
	}

	lut := r.BRDFLUT()
	if lut.Size != 512 {
		t.Errorf("BRDFLUT size = %d, want 512", lut.Size)
	}
	if r.BRDFLUT() != lut {
		t.Error("expected BRDFLUT to be cached across calls")
	}
}

func TestRenderer_UpdateClearsDebugLinesAfterFlush(t *testing.T) {
	r, err := NewWithBackend(Config{}, hal.BackendOpenGL)
	if err != nil {
		t.Fatalf("NewWithBackend: %v", err)
	}
	defer r.Close()

	r.DebugDraw().DrawLine(core.Vec3{}, core.Vec3{X: 1}, core.Vec3{X: 1})
	if len(r.DebugDraw().Lines()) != 1 {
		t.Fatalf("expected 1 buffered line, got %d", len(r.DebugDraw().Lines()))
	}

	r.Update(1.0 / 60.0)

	if len(r.DebugDraw().Lines()) != 0 {
		t.Errorf("expected debug lines cleared after Update, got %d", len(r.DebugDraw().Lines()))
	}
}

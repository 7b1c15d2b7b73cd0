// Command demo constructs a Renderer against the build's default backend,
// registers one shader and one material, creates a single triangle render
// object, and runs a short headless update/draw loop — a minimal
// smoke-test replacing a real windowed application.
package main

import (
	"log/slog"
	"os"

	"github.com/flexengine/renderer/core"
	"github.com/flexengine/renderer/hal"
	"github.com/flexengine/renderer/render"
	"github.com/flexengine/renderer/uimesh"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	hal.SetLogger(logger)

	r, err := render.New(render.Config{
		DeviceConfig: hal.DeviceConfig{Width: 1280, Height: 720, VSync: true},
	})
	if err != nil {
		logger.Error("failed to construct renderer", "error", err)
		os.Exit(1)
	}
	defer r.Close()

	dev := r.Device()
	dev.SetShaderCount(1)
	dev.LoadShaderCode(0, &core.Shader{
		Name:             "unlit",
		VertexFile:       "shaders/unlit.vert",
		FragmentFile:     "shaders/unlit.frag",
		VertexAttributes: core.AttribPosition | core.AttribColor32,
	})

	matID := dev.InitializeMaterial(&core.MaterialCreateInfo{
		Name:            "triangle",
		ShaderName:      "unlit",
		ColorMultiplier: [4]float32{1, 1, 1, 1},
		TextureScale:    1,
	}, nil)
	if matID == core.InvalidMaterialID {
		logger.Error("failed to initialize material")
		os.Exit(1)
	}

	var verts core.VertexBufferData
	verts.Initialize(core.AttribPosition, []float32{
		0, 0.5, 0,
		-0.5, -0.5, 0,
		0.5, -0.5, 0,
	}, 3)

	objID := dev.InitializeRenderObject(&core.RenderObjectCreateInfo{
		MaterialID: matID,
		VertexData: &verts,
		Topology:   core.TopologyTriangleList,
	})
	dev.PostInitializeRenderObject(objID)

	r.SetCamera(core.Camera{
		Position:    core.Vec3{Z: 3},
		Forward:     core.Vec3{Z: -1},
		Up:          core.Vec3{Y: 1},
		FovYRadians: 1.0472, // 60 degrees
		Aspect:      1280.0 / 720.0,
		Near:        0.1,
		Far:         100,
	})

	uiMesh := r.NewUIMesh(matID)
	uiMesh.DrawRect(uimesh.Vec2{X: 10, Y: 10}, uimesh.Vec2{X: 110, Y: 40}, core.Vec4{X: 1, Y: 1, Z: 1, W: 1}, 0)

	const frames = 60
	const dt = 1.0 / 60.0
	for i := 0; i < frames; i++ {
		r.DebugDraw().DrawLine(core.Vec3{}, core.Vec3{X: 1, Y: 1, Z: 1}, core.Vec3{X: 1})
		r.Update(dt)
		r.Draw()
	}
	uiMesh.EndFrame()

	logger.Info("demo run complete", "frames", frames)
}

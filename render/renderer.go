package render

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/flexengine/renderer/core"
	"github.com/flexengine/renderer/debugdraw"
	"github.com/flexengine/renderer/font"
	"github.com/flexengine/renderer/hal"
	"github.com/flexengine/renderer/ibl"
	"github.com/flexengine/renderer/imageio"
	"github.com/flexengine/renderer/internal/thread"
	"github.com/flexengine/renderer/sprite"
	"github.com/flexengine/renderer/uimesh"
)

// Renderer wires one hal.Device to the engine-facing helpers that sit above
// the backend boundary: font baking, IBL precompute, screenshot writing,
// and sprite queuing. It owns no GPU resources of its own — every resource
// call is forwarded to the device.
type Renderer struct {
	dev hal.Device

	baker      *font.Baker
	precomp    *ibl.Precomputer
	screenshot *imageio.ScreenshotWriter
	sprites    *sprite.Queue
	debug      *debugdraw.Draw
	loop       *thread.RenderLoop

	screenshotDir string
}

// New constructs a Renderer using the backend selected at build time
// (backend_vulkan.go / backend_opengl.go). Returns an error if that
// backend's device construction fails.
func New(cfg Config) (*Renderer, error) {
	return newWithKind(cfg, defaultBackendKind)
}

// NewWithBackend constructs a Renderer against an explicitly chosen,
// already-registered backend — used by tests and tools that need to pick a
// backend regardless of the build's default.
func NewWithBackend(cfg Config, kind hal.BackendKind) (*Renderer, error) {
	return newWithKind(cfg, kind)
}

func newWithKind(cfg Config, kind hal.BackendKind) (*Renderer, error) {
	backend, ok := hal.GetBackend(kind)
	if !ok {
		return nil, fmt.Errorf("render: no backend registered for %s", kind)
	}
	dev, err := backend.NewDevice(&cfg.DeviceConfig)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return &Renderer{
		dev:           dev,
		baker:         font.NewBaker(),
		precomp:       ibl.NewPrecomputer(128),
		screenshot:    imageio.NewScreenshotWriter(),
		sprites:       sprite.NewQueue(cfg.Width, cfg.Height),
		debug:         debugdraw.New(),
		loop:          thread.NewRenderLoop(),
		screenshotDir: cfg.ScreenshotDir,
	}, nil
}

// Device exposes the underlying hal.Device for callers that need direct
// resource-creation calls (InitializeMaterial, InitializeTexture, ...)
// rather than going through a Renderer-level helper.
func (r *Renderer) Device() hal.Device { return r.dev }

// SetCamera forwards the active viewpoint to the device, driving
// shadow-cascade fitting and the deferred-shading view/projection uniforms
// for every subsequent Draw.
func (r *Renderer) SetCamera(cam core.Camera) { r.dev.SetCamera(cam) }

// LoadFont bakes (or loads a cached bake of) fontPath at pixelSize/dpi via
// font.Baker and returns the result; it does not register the font with
// the device's text cache.
func (r *Renderer) LoadFont(fontPath string, pixelSize, dpi float64, atlasCachePath string) (*font.Font, error) {
	return r.baker.LoadFont(fontPath, pixelSize, dpi, atlasCachePath)
}

// QueueSprite buffers one sprite draw for the current frame, resolved
// against the renderer's tracked viewport size.
func (r *Renderer) QueueSprite(d sprite.Draw) { r.sprites.Enqueue(d) }

// DebugDraw returns the physics debug-line buffer shared across the
// renderer's lifetime; callers append lines to it between Update calls and
// Update flushes + clears it each frame.
func (r *Renderer) DebugDraw() *debugdraw.Draw { return r.debug }

// NewUIMesh returns an empty UI mesh builder bound to matID, ready to
// accumulate one frame's worth of DrawRect/DrawArc/DrawPolygon calls.
func (r *Renderer) NewUIMesh(matID core.MaterialID) *uimesh.Mesh { return uimesh.New(matID) }

// BakeIBL runs the equirect-to-cubemap, irradiance, and prefilter steps
// for one HDR probe image, using the renderer's shared
// Precomputer (and its cached BRDF LUT).
func (r *Renderer) BakeIBL(equirect *ibl.HDRImage) *ibl.Result {
	return r.precomp.BakeFromEquirect(equirect)
}

// BRDFLUT returns the material-independent split-sum integration LUT,
// computed once and cached across calls.
func (r *Renderer) BRDFLUT() *ibl.BRDFLUT {
	return r.precomp.BRDFLUT()
}

// Screenshot asynchronously encodes and writes img under name within the
// renderer's configured screenshot directory. Returns false if a previous
// screenshot write is still pending.
func (r *Renderer) Screenshot(name string, img image.Image) bool {
	return r.screenshot.Save(filepath.Join(r.screenshotDir, name), img)
}

// Update runs per-frame bookkeeping above the device: applies any resize
// queued by Resize since the last frame (the UI-thread/render-thread
// handoff internal/thread.RenderLoop exists for), flushes the sprite
// queue and the debug-line buffer into the device, polls the pending
// screenshot write, then forwards to the device's own Update (the DPI
// re-check timer).
func (r *Renderer) Update(dt float64) {
	if w, h, ok := r.loop.ConsumePendingResize(); ok {
		r.dev.OnWindowSizeChanged(int(w), int(h))
		r.sprites.Resize(int(w), int(h))
	}

	r.sprites.Flush(r.dev)

	if lines := r.debug.Lines(); len(lines) > 0 {
		converted := make([]hal.DebugLine, len(lines))
		for i, l := range lines {
			converted[i] = hal.DebugLine{From: l.From, To: l.To, Color: l.Color}
		}
		r.dev.SetDebugLines(converted)
		r.debug.ClearLines()
	} else {
		r.dev.SetDebugLines(nil)
	}

	if err, ok := r.screenshot.Poll(); ok && err != nil {
		hal.Logger().Error("screenshot write failed", "error", err)
	}
	r.dev.Update(dt)
}

// Draw renders and presents one frame.
func (r *Renderer) Draw() {
	r.dev.Draw()
}

// Resize queues a window size change from the caller's thread (typically a
// WM_SIZE-style UI callback); it's applied on the next Update rather than
// immediately, so a resize mid-frame can't race the device's own draw
// call.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.loop.RequestResize(uint32(width), uint32(height))
}

// Close releases the renderer's own resources: the screenshot writer's and
// render loop's background threads. The device has no Close in its
// interface — backend teardown happens at process exit in this reduced
// scope (DESIGN.md).
func (r *Renderer) Close() {
	r.screenshot.Close()
	r.loop.Stop()
}
